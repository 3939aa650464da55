package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsContextDone(t *testing.T) {
	t.Run(`live context is not done`, func(t *testing.T) {
		require.Equal(t, false, IsContextDone(context.Background()))
	})

	t.Run(`cancelled context is done`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Equal(t, true, IsContextDone(ctx))
	})

	t.Run(`nil context is done`, func(t *testing.T) {
		require.Equal(t, true, IsContextDone(nil))
	})
}

func TestSanitizeFileName(t *testing.T) {
	t.Run(`plain name unchanged`, func(t *testing.T) {
		require.Equal(t, "report.pdf", SanitizeFileName("report.pdf"))
	})

	t.Run(`path separators stripped`, func(t *testing.T) {
		require.Equal(t, "passwd", SanitizeFileName("../../etc/passwd"))
		require.Equal(t, "report.pdf", SanitizeFileName(`..\uploads\report.pdf`))
	})
}
