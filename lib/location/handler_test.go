package locationhandler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	locationapimodels "crewtime-backend/models/api/location"
)

func newTestHandler(t *testing.T) Provider {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewInstance(rdb)
}

func payload(lat, lng float64, ts int64) locationapimodels.LocationPayload {
	return locationapimodels.LocationPayload{
		Coords:    locationapimodels.Coords{Lat: lat, Lng: lng},
		Timestamp: ts,
	}
}

func TestValidatePayload(t *testing.T) {
	t.Run(`numeric coords pass`, func(t *testing.T) {
		err := ValidatePayload(payload(40.7, -74.0, 0))
		require.Nil(t, err)
	})

	t.Run(`integer coords pass`, func(t *testing.T) {
		err := ValidatePayload(locationapimodels.LocationPayload{
			Coords: locationapimodels.Coords{Lat: 40, Lng: -74},
		})
		require.Nil(t, err)
	})

	t.Run(`json numbers pass`, func(t *testing.T) {
		err := ValidatePayload(locationapimodels.LocationPayload{
			Coords: locationapimodels.Coords{Lat: json.Number("40.7"), Lng: json.Number("-74.0")},
		})
		require.Nil(t, err)
	})

	t.Run(`string coords rejected`, func(t *testing.T) {
		err := ValidatePayload(locationapimodels.LocationPayload{
			Coords: locationapimodels.Coords{Lat: "40.7", Lng: -74.0},
		})
		require.NotNil(t, err)
	})

	t.Run(`missing coords rejected`, func(t *testing.T) {
		err := ValidatePayload(locationapimodels.LocationPayload{})
		require.NotNil(t, err)
	})
}

func TestSaveAndLatest(t *testing.T) {
	ctx := context.Background()

	t.Run(`latest returns the newest sample`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.Save(ctx, "user-1", payload(40.7, -74.0, 1000))
		require.Nil(t, err)
		saved, err := h.Save(ctx, "user-1", payload(40.8, -74.1, 2000))
		require.Nil(t, err)

		latest, err := h.Latest(ctx, "user-1")
		require.Nil(t, err)
		require.NotNil(t, latest)
		require.Equal(t, saved.ID, latest.ID)
		require.Equal(t, 40.8, latest.Lat)
		require.Equal(t, -74.1, latest.Lng)
		require.Equal(t, int64(2000), latest.Timestamp)
	})

	t.Run(`latest is nil for a user without samples`, func(t *testing.T) {
		h := newTestHandler(t)
		latest, err := h.Latest(ctx, "user-unknown")
		require.Nil(t, err)
		require.Nil(t, latest)
	})

	t.Run(`samples with equal timestamps coexist`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.Save(ctx, "user-1", payload(40.7, -74.0, 1000))
		require.Nil(t, err)
		_, err = h.Save(ctx, "user-1", payload(40.8, -74.1, 1000))
		require.Nil(t, err)

		list, err := h.History(ctx, "user-1", locationapimodels.HistoryRequest{})
		require.Nil(t, err)
		require.Equal(t, 2, len(list))
	})

	t.Run(`invalid payload is not stored`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.Save(ctx, "user-1", locationapimodels.LocationPayload{
			Coords: locationapimodels.Coords{Lat: "bad", Lng: -74.0},
		})
		require.NotNil(t, err)
		latest, err := h.Latest(ctx, "user-1")
		require.Nil(t, err)
		require.Nil(t, latest)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run(`newest first`, func(t *testing.T) {
		h := newTestHandler(t)
		for i := int64(1); i <= 3; i++ {
			_, err := h.Save(ctx, "user-1", payload(40.0+float64(i), -74.0, i*1000))
			require.Nil(t, err)
		}
		list, err := h.History(ctx, "user-1", locationapimodels.HistoryRequest{})
		require.Nil(t, err)
		require.Equal(t, 3, len(list))
		require.Equal(t, int64(3000), list[0].Timestamp)
		require.Equal(t, int64(1000), list[2].Timestamp)
	})

	t.Run(`before bound is exclusive`, func(t *testing.T) {
		h := newTestHandler(t)
		for i := int64(1); i <= 3; i++ {
			_, err := h.Save(ctx, "user-1", payload(40.0, -74.0, i*1000))
			require.Nil(t, err)
		}
		list, err := h.History(ctx, "user-1", locationapimodels.HistoryRequest{Before: 3000})
		require.Nil(t, err)
		require.Equal(t, 2, len(list))
		require.Equal(t, int64(2000), list[0].Timestamp)
	})

	t.Run(`limit respected and capped`, func(t *testing.T) {
		h := newTestHandler(t)
		for i := int64(1); i <= 120; i++ {
			_, err := h.Save(ctx, "user-1", payload(40.0, -74.0, i*1000))
			require.Nil(t, err)
		}
		list, err := h.History(ctx, "user-1", locationapimodels.HistoryRequest{Limit: 5})
		require.Nil(t, err)
		require.Equal(t, 5, len(list))

		list, err = h.History(ctx, "user-1", locationapimodels.HistoryRequest{Limit: 1000})
		require.Nil(t, err)
		require.Equal(t, historyPageCap, len(list))
	})

	t.Run(`cursor pages do not overlap`, func(t *testing.T) {
		h := newTestHandler(t)
		for i := int64(1); i <= 6; i++ {
			_, err := h.Save(ctx, "user-1", payload(40.0, -74.0, i*1000))
			require.Nil(t, err)
		}
		first, err := h.History(ctx, "user-1", locationapimodels.HistoryRequest{Limit: 3})
		require.Nil(t, err)
		require.Equal(t, 3, len(first))

		second, err := h.History(ctx, "user-1", locationapimodels.HistoryRequest{Limit: 3, Before: first[len(first)-1].Timestamp})
		require.Nil(t, err)
		require.Equal(t, 3, len(second))
		require.Equal(t, int64(3000), second[0].Timestamp)
		require.Equal(t, int64(1000), second[2].Timestamp)
	})
}
