package locationapimodels

type Coords struct {
	Lat interface{} `json:"lat"`
	Lng interface{} `json:"lng"`
}

type LocationPayload struct {
	Coords    Coords  `json:"coords"`
	Accuracy  float64 `json:"accuracy,omitempty"`
	Heading   float64 `json:"heading,omitempty"`
	Speed     float64 `json:"speed,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

type LocationView struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy,omitempty"`
	Heading   float64 `json:"heading,omitempty"`
	Speed     float64 `json:"speed,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

type HistoryRequest struct {
	// Before is an exclusive upper bound on the sample timestamp in unix
	// milliseconds; zero means "from the newest".
	Before int64 `json:"before"`
	Limit  int   `json:"limit"`
}
