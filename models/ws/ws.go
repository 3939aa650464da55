package wsmodels

import locationapimodels "crewtime-backend/models/api/location"

// LocationUpdate is pushed to every watcher when an employee reports a
// new location sample.
type LocationUpdate struct {
	UserID   string                         `json:"user_id"`
	UserName string                         `json:"user_name,omitempty"`
	Location locationapimodels.LocationView `json:"location"`
}
