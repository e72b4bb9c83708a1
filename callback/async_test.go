package callback

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAsync_DeliversCallbacks(t *testing.T) {
	d := newTestDispatcher(t)

	var count atomic.Int64
	var last atomic.Int32
	hook, err := d.Register(func(v int32) {
		count.Add(1)
		last.Store(v)
	})
	require.NoError(t, err)
	defer hook.Unregister()

	require.NoError(t, d.StartAsync(time.Millisecond, 9))
	defer d.StopAsync()

	require.Eventually(t, func() bool { return count.Load() >= 3 },
		2*time.Second, time.Millisecond, "dispatcher thread did not deliver callbacks")
	require.Equal(t, int32(9), last.Load())
}

func TestAsync_StopQuiesces(t *testing.T) {
	d := newTestDispatcher(t)

	var count atomic.Int64
	hook, err := d.Register(func(int32) { count.Add(1) })
	require.NoError(t, err)
	defer hook.Unregister()

	require.NoError(t, d.StartAsync(time.Millisecond, 0))
	require.Eventually(t, func() bool { return count.Load() > 0 },
		2*time.Second, time.Millisecond)

	d.StopAsync()
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, settled, count.Load(), "callback ran after StopAsync returned")
}

// destroyable models a target whose storage is released after unregistration.
// The callback records a violation if it ever observes the released state,
// which is exactly the use-after-free the protocol must prevent.
type destroyable struct {
	released  atomic.Bool
	observed  atomic.Int64
	violation atomic.Bool
}

func TestAsync_UnregisterBeforeDestroy(t *testing.T) {
	d := newTestDispatcher(t)

	require.NoError(t, d.StartAsync(time.Millisecond, 1))
	defer d.StopAsync()

	for i := 0; i < 50; i++ {
		obj := &destroyable{}
		hook, err := d.RegisterTarget(obj, func(target any, _ int32) {
			o := target.(*destroyable)
			if o.released.Load() {
				o.violation.Store(true)
			}
			o.observed.Add(1)
		})
		require.NoError(t, err)

		// Let the dispatcher thread race against the unregistration.
		time.Sleep(time.Duration(i%4) * time.Millisecond)

		// Unregister blocks until no invocation is in flight or possible;
		// only then is releasing the target legal.
		hook.Unregister()
		obj.released.Store(true)

		require.False(t, obj.violation.Load(),
			"callback observed released target on iteration %d", i)
	}
}

func TestAsync_FaultSurfacesLocally(t *testing.T) {
	d := newTestDispatcher(t)

	hook, err := d.Register(func(int32) { panic("async boom") })
	require.NoError(t, err)
	defer hook.Unregister()

	require.NoError(t, d.StartAsync(time.Millisecond, 0))
	defer d.StopAsync()

	require.Eventually(t, func() bool { return d.LastFault() != nil },
		2*time.Second, time.Millisecond, "intercepted async fault never surfaced")
}

func TestAsync_StartTwice(t *testing.T) {
	d := newTestDispatcher(t)

	require.NoError(t, d.StartAsync(time.Millisecond, 0))
	defer d.StopAsync()

	require.Error(t, d.StartAsync(time.Millisecond, 0))
}

func TestAsync_CloseStopsThread(t *testing.T) {
	d, err := NewDispatcher()
	require.NoError(t, err)

	var count atomic.Int64
	_, err = d.Register(func(int32) { count.Add(1) })
	require.NoError(t, err)

	require.NoError(t, d.StartAsync(time.Millisecond, 0))
	require.Eventually(t, func() bool { return count.Load() > 0 },
		2*time.Second, time.Millisecond)

	require.NoError(t, d.Close())
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, settled, count.Load(), "callback ran after Close returned")
}
