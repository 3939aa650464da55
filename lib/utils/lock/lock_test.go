package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`free lock runs the code`, func(t *testing.T) {
		ran := false
		success, err := WithDelay(context.Background(), "free-key", time.Second, func() error {
			ran = true
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, true, success)
		require.Equal(t, true, ran)
	})

	t.Run(`held lock times out`, func(t *testing.T) {
		release := make(chan struct{})
		held := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "busy-key", time.Second, func() error {
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		defer close(release)

		success, err := WithDelay(context.Background(), "busy-key", 100*time.Millisecond, func() error {
			t.Error("code ran under a held lock")
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, false, success)
	})

	t.Run(`different keys do not contend`, func(t *testing.T) {
		release := make(chan struct{})
		held := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "key-a", time.Second, func() error {
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		defer close(release)

		success, err := WithDelay(context.Background(), "key-b", 100*time.Millisecond, func() error {
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, true, success)
	})

	t.Run(`lock is released after the code returns`, func(t *testing.T) {
		_, err := WithDelay(context.Background(), "reuse-key", time.Second, func() error {
			return nil
		})
		require.Nil(t, err)
		success, err := WithDelay(context.Background(), "reuse-key", time.Second, func() error {
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, true, success)
	})

	t.Run(`concurrent callers serialize`, func(t *testing.T) {
		var mu sync.Mutex
		active := 0
		maxActive := 0
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = WithDelay(context.Background(), "serial-key", 2*time.Second, func() error {
					mu.Lock()
					active++
					if active > maxActive {
						maxActive = active
					}
					mu.Unlock()
					time.Sleep(10 * time.Millisecond)
					mu.Lock()
					active--
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()
		require.Equal(t, 1, maxActive)
	})
}
