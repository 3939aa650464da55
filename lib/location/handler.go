package locationhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	locationapimodels "crewtime-backend/models/api/location"
	redisclient "crewtime-backend/redis"
)

const (
	// historyPageCap bounds one history page regardless of the requested limit.
	historyPageCap     = 100
	historyPageDefault = 50
)

type Provider interface {
	Save(ctx context.Context, userID string, payload locationapimodels.LocationPayload) (locationapimodels.LocationView, error)
	Latest(ctx context.Context, userID string) (*locationapimodels.LocationView, error)
	History(ctx context.Context, userID string, req locationapimodels.HistoryRequest) ([]locationapimodels.LocationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		rdb: redisclient.Client,
	}
}

func NewInstance(rdb *redis.Client) Provider {
	return impl{
		rdb: rdb,
	}
}

type impl struct {
	rdb *redis.Client
}

// ValidatePayload returns nil when coords.lat and coords.lng are both
// numeric, otherwise a description of the problem.
func ValidatePayload(payload locationapimodels.LocationPayload) error {
	if _, ok := asNumber(payload.Coords.Lat); !ok {
		return errors.New("coords.lat must be a number")
	}
	if _, ok := asNumber(payload.Coords.Lng); !ok {
		return errors.New("coords.lng must be a number")
	}
	return nil
}

func asNumber(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func userKey(userID string) string {
	return fmt.Sprintf("location:%s", userID)
}

// Save stores one sample in the user's sorted set scored by unix millis.
// Each member carries its own id, so samples from the same millisecond
// coexist instead of overwriting each other.
func (i impl) Save(ctx context.Context, userID string, payload locationapimodels.LocationPayload) (locationapimodels.LocationView, error) {
	if err := ValidatePayload(payload); err != nil {
		return locationapimodels.LocationView{}, err
	}
	lat, _ := asNumber(payload.Coords.Lat)
	lng, _ := asNumber(payload.Coords.Lng)
	ts := payload.Timestamp
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	view := locationapimodels.LocationView{
		ID:        uuid.NewString(),
		Lat:       lat,
		Lng:       lng,
		Accuracy:  payload.Accuracy,
		Heading:   payload.Heading,
		Speed:     payload.Speed,
		Timestamp: ts,
	}
	member, err := json.Marshal(view)
	if err != nil {
		return locationapimodels.LocationView{}, err
	}
	err = i.rdb.ZAdd(ctx, userKey(userID), redis.Z{
		Score:  float64(ts),
		Member: string(member),
	}).Err()
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to save location sample")
		return locationapimodels.LocationView{}, err
	}
	return view, nil
}

func (i impl) Latest(ctx context.Context, userID string) (*locationapimodels.LocationView, error) {
	members, err := i.rdb.ZRevRange(ctx, userKey(userID), 0, 0).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}
	view := locationapimodels.LocationView{}
	if err = json.Unmarshal([]byte(members[0]), &view); err != nil {
		return nil, errors.Wrap(err, "corrupt location sample")
	}
	return &view, nil
}

// History returns samples newest first, strictly older than req.Before
// when set, capped server-side.
func (i impl) History(ctx context.Context, userID string, req locationapimodels.HistoryRequest) ([]locationapimodels.LocationView, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = historyPageDefault
	}
	if limit > historyPageCap {
		limit = historyPageCap
	}
	max := "+inf"
	if req.Before > 0 {
		max = "(" + strconv.FormatInt(req.Before, 10)
	}
	members, err := i.rdb.ZRevRangeByScore(ctx, userKey(userID), &redis.ZRangeBy{
		Min:    "-inf",
		Max:    max,
		Offset: 0,
		Count:  int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}
	list := make([]locationapimodels.LocationView, 0, len(members))
	for _, member := range members {
		view := locationapimodels.LocationView{}
		if err = json.Unmarshal([]byte(member), &view); err != nil {
			return nil, errors.Wrap(err, "corrupt location sample")
		}
		list = append(list, view)
	}
	return list, nil
}
