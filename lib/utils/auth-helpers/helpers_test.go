package authhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run(`hash verifies against the original password`, func(t *testing.T) {
		hash, err := HashPassword("s3cret-pass")
		require.Nil(t, err)
		require.NotEqual(t, "s3cret-pass", hash)
		require.Equal(t, true, CheckPassword(hash, "s3cret-pass"))
	})

	t.Run(`wrong password rejected`, func(t *testing.T) {
		hash, err := HashPassword("s3cret-pass")
		require.Nil(t, err)
		require.Equal(t, false, CheckPassword(hash, "other-pass"))
	})

	t.Run(`same password hashes differently`, func(t *testing.T) {
		hash1, err := HashPassword("s3cret-pass")
		require.Nil(t, err)
		hash2, err := HashPassword("s3cret-pass")
		require.Nil(t, err)
		require.NotEqual(t, hash1, hash2)
	})
}
