package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	t.Run(`defaults applied`, func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
	})

	t.Run(`values passed through`, func(t *testing.T) {
		page, limit := Pagination{Page: 3, Limit: 25}.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, 25, limit)
	})

	t.Run(`limit is capped`, func(t *testing.T) {
		_, limit := Pagination{Limit: 500}.GetPage()
		require.Equal(t, 100, limit)
	})

	t.Run(`negative values fall back to defaults`, func(t *testing.T) {
		page, limit := Pagination{Page: -1, Limit: -5}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
	})
}
