package async_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/vantis-uk/vantis/pkg/utils/async"
)

func TestDispatch_OutlivesCaller(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var ran atomic.Bool
	started := make(chan struct{})
	async.Dispatch(ctx, func(ctx context.Context) error {
		close(started)
		time.Sleep(10 * time.Millisecond)
		if ctx.Err() == nil {
			ran.Store(true)
		}
		return nil
	})

	<-started
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	gt.NoError(t, async.Wait(waitCtx))
	gt.B(t, ran.Load()).True()
}

func TestDispatch_RecoversPanicAndError(t *testing.T) {
	async.Dispatch(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})
	async.Dispatch(context.Background(), func(ctx context.Context) error {
		return errors.New("failed")
	})

	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	gt.NoError(t, async.Wait(waitCtx))
}

func TestWait_Timeout(t *testing.T) {
	release := make(chan struct{})
	async.Dispatch(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})

	waitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	gt.Error(t, async.Wait(waitCtx))

	close(release)
	gt.NoError(t, async.Wait(context.Background()))
}

func TestWait_ConcurrentWithDispatch(t *testing.T) {
	var (
		wg        sync.WaitGroup
		completed atomic.Int64
	)
	const producers = 8
	const perProducer = 50

	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perProducer {
				async.Dispatch(context.Background(), func(ctx context.Context) error {
					completed.Add(1)
					return nil
				})
			}
		}()
	}
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			gt.NoError(t, async.Wait(waitCtx))
		}()
	}
	wg.Wait()

	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	gt.NoError(t, async.Wait(waitCtx))
	gt.N(t, completed.Load()).Equal(producers * perProducer)
}

func TestWait_Idle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gt.NoError(t, async.Wait(ctx))
}
