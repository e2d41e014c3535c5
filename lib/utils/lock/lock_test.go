package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()
	t.Run("конкуренты по одному ключу сериализуются", func(t *testing.T) {
		var inside int32
		var overlaps int32
		wg := sync.WaitGroup{}
		for n := 0; n < 8; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(ctx, "serialize-key", 5*time.Second, func() error {
					if atomic.AddInt32(&inside, 1) > 1 {
						atomic.AddInt32(&overlaps, 1)
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					return nil
				})
				require.NoError(t, err)
				require.True(t, ok)
			}()
		}
		wg.Wait()
		require.Zero(t, atomic.LoadInt32(&overlaps))
	})
	t.Run("второй вызов не дождался освобождения", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "busy-key", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(ctx, "busy-key", 100*time.Millisecond, func() error {
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)
		close(release)
	})
	t.Run("разные ключи не блокируют друг друга", func(t *testing.T) {
		start := time.Now()
		wg := sync.WaitGroup{}
		for _, key := range []string{"key-a", "key-b"} {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				ok, err := WithDelay(ctx, key, time.Second, func() error {
					time.Sleep(300 * time.Millisecond)
					return nil
				})
				require.NoError(t, err)
				require.True(t, ok)
			}(key)
		}
		wg.Wait()
		// при сериализации прошло бы не меньше 600ms
		require.Less(t, time.Since(start), 550*time.Millisecond)
	})
	t.Run("отмена контекста прекращает ожидание", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "cancel-key", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		cancelCtx, cancel := context.WithCancel(context.Background())
		cancel()
		ok, err := WithDelay(cancelCtx, "cancel-key", 5*time.Second, func() error {
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)
		close(release)
	})
	t.Run("ключ освобождается после ошибки", func(t *testing.T) {
		wantErr := context.DeadlineExceeded
		ok, err := WithDelay(ctx, "err-key", time.Second, func() error {
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		require.True(t, ok)

		ok, err = WithDelay(ctx, "err-key", 100*time.Millisecond, func() error {
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
	})
}
