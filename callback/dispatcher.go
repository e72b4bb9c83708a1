package callback

/*
#cgo LDFLAGS: -lpthread
#include "dispatch.h"

extern int32_t goDispatchTrampoline(uintptr_t slot, int32_t value);

static cs_hook *cs_register_go(cs_dispatcher *d, uintptr_t slot) {
	return cs_dispatcher_register(d, goDispatchTrampoline, slot);
}

static cs_hook *cs_register_absent(cs_dispatcher *d) {
	return cs_dispatcher_register(d, NULL, 0);
}
*/
import "C"

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/csnappy/errors"
	"github.com/wippyai/csnappy/fault"
)

// Dispatcher wraps the opaque cs_dispatcher foreign resource. The resource
// is created and destroyed exclusively by foreign calls; Go only borrows
// the pointer for the duration of each call.
//
// Dispatcher is safe for concurrent use.
type Dispatcher struct {
	mu        sync.Mutex
	calls     sync.WaitGroup
	handle    *C.cs_dispatcher
	hooks     map[*Hook]struct{}
	log       *zap.Logger
	lastFault error
	async     bool
	closed    bool
}

// Hook is a caller-held registration token pairing the opaque cs_hook
// foreign resource with the local slot that pins the callback and target.
type Hook struct {
	mu     sync.Mutex
	disp   *Dispatcher
	handle *C.cs_hook
	slot   uintptr
	done   bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for registration and dispatch events.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDispatcher creates the foreign dispatcher resource.
func NewDispatcher(opts ...Option) (*Dispatcher, error) {
	h := C.cs_dispatcher_new()
	if h == nil {
		return nil, errors.Registration("cs_dispatcher_new", nil)
	}

	d := &Dispatcher{
		handle: h,
		hooks:  make(map[*Hook]struct{}),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// acquire borrows the foreign handle for one call. Close waits for every
// borrow to be returned before freeing the handle.
func (d *Dispatcher) acquire(phase errors.Phase) (*C.cs_dispatcher, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.Closed(phase, "dispatcher")
	}
	d.calls.Add(1)
	return d.handle, nil
}

func (d *Dispatcher) release() {
	d.calls.Done()
}

// Register registers a global callback. A nil fn is a valid "absent"
// registration: it crosses the boundary as a NULL function pointer and the
// dispatcher skips it during invocation.
func (d *Dispatcher) Register(fn Func) (*Hook, error) {
	return d.register(registration{fn: fn, disp: d}, fn == nil)
}

// RegisterTarget registers a callback together with a target value. Every
// invocation receives the same target; the registration keeps it live until
// Unregister returns.
func (d *Dispatcher) RegisterTarget(target any, fn TargetFunc) (*Hook, error) {
	if fn == nil {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Detail("targeted registration requires a callback").
			Build()
	}
	return d.register(registration{tfn: fn, target: target, disp: d}, false)
}

func (d *Dispatcher) register(reg registration, absent bool) (*Hook, error) {
	handle, err := d.acquire(errors.PhaseRegister)
	if err != nil {
		return nil, err
	}
	defer d.release()

	var (
		slot uintptr
		ch   *C.cs_hook
	)
	if absent {
		ch = C.cs_register_absent(handle)
	} else {
		slot = slots.add(reg)
		ch = C.cs_register_go(handle, C.uintptr_t(slot))
	}
	if ch == nil {
		if slot != 0 {
			slots.remove(slot)
		}
		return nil, errors.Registration("cs_dispatcher_register", nil)
	}

	h := &Hook{disp: d, handle: ch, slot: slot}

	d.mu.Lock()
	if d.hooks == nil {
		// Close won the race after acquire. The borrow keeps handle alive
		// until this call returns, so the foreign registration can still be
		// undone before Close frees the dispatcher; otherwise the caller
		// would hold a hook into freed memory that Close never cancelled.
		d.mu.Unlock()
		C.cs_hook_cancel(handle, ch)
		if slot != 0 {
			slots.remove(slot)
		}
		return nil, errors.Closed(errors.PhaseRegister, "dispatcher")
	}
	d.hooks[h] = struct{}{}
	d.mu.Unlock()

	d.log.Debug("callback registered",
		zap.Uintptr("slot", slot),
		zap.Bool("absent", absent),
		zap.Bool("targeted", reg.tfn != nil))
	return h, nil
}

// Trigger synchronously invokes every registered callback on the calling
// thread; each callback returns to foreign code before Trigger returns to
// its caller. If a callback panicked, the fault intercepted at the boundary
// is reported here as an error instead of unwinding into foreign code.
func (d *Dispatcher) Trigger(value int32) error {
	handle, err := d.acquire(errors.PhaseDispatch)
	if err != nil {
		return err
	}
	defer d.release()

	st := fault.Status(C.cs_dispatcher_trigger(handle, C.int32_t(value)))
	if st == fault.StatusOK {
		return nil
	}
	if err := d.takeFault(); err != nil {
		return err
	}
	return errors.New(errors.PhaseDispatch, errors.KindBoundaryFault).
		Op("trigger").
		Detail("callback status %s", st).
		Build()
}

// StartAsync starts the dispatcher-owned thread, which invokes all
// registered callbacks with the given value once per period. Callbacks then
// run concurrently with local goroutines until StopAsync or Close.
func (d *Dispatcher) StartAsync(period time.Duration, value int32) error {
	handle, err := d.acquire(errors.PhaseDispatch)
	if err != nil {
		return err
	}
	defer d.release()

	d.mu.Lock()
	if d.async {
		d.mu.Unlock()
		return errors.New(errors.PhaseDispatch, errors.KindRegistration).
			Detail("async dispatch already running").
			Build()
	}
	d.async = true
	d.mu.Unlock()

	ms := int32(period / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	if C.cs_dispatcher_start(handle, C.int32_t(ms), C.int32_t(value)) != 0 {
		d.mu.Lock()
		d.async = false
		d.mu.Unlock()
		return errors.New(errors.PhaseDispatch, errors.KindRegistration).
			Detail("cs_dispatcher_start failed").
			Build()
	}
	d.log.Debug("async dispatch started", zap.Duration("period", period))
	return nil
}

// StopAsync stops the dispatcher thread. It blocks until the thread has
// exited; after return no callback runs unless triggered synchronously.
func (d *Dispatcher) StopAsync() {
	handle, err := d.acquire(errors.PhaseDispatch)
	if err != nil {
		return
	}
	defer d.release()

	d.mu.Lock()
	running := d.async
	d.async = false
	d.mu.Unlock()
	if !running {
		return
	}

	C.cs_dispatcher_stop(handle)
	d.log.Debug("async dispatch stopped")
}

// LastFault returns the most recent intercepted callback fault and clears
// it. It reports faults raised on the dispatcher thread, which have no
// synchronous caller to return an error to.
func (d *Dispatcher) LastFault() error {
	return d.takeFault()
}

func (d *Dispatcher) recordFault(err error) {
	d.mu.Lock()
	d.lastFault = err
	d.mu.Unlock()
}

func (d *Dispatcher) takeFault() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.lastFault
	d.lastFault = nil
	return err
}

// Close stops async dispatch, cancels every hook, and destroys the foreign
// resource. Close is idempotent.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	hooks := make([]*Hook, 0, len(d.hooks))
	for h := range d.hooks {
		hooks = append(hooks, h)
	}
	d.hooks = nil
	handle := d.handle
	d.handle = nil
	d.mu.Unlock()

	// Wait out every borrowed call before touching the foreign resource.
	d.calls.Wait()

	C.cs_dispatcher_stop(handle)
	for _, h := range hooks {
		h.cancel(handle)
	}
	C.cs_dispatcher_free(handle)

	d.log.Debug("dispatcher closed")
	return nil
}

// Unregister cancels the registration. It blocks until the foreign
// dispatcher guarantees no in-flight or future invocation, so the target
// registered with this hook may be released as soon as Unregister returns.
// Unregister is idempotent.
func (h *Hook) Unregister() {
	d := h.disp

	handle, err := d.acquire(errors.PhaseRegister)
	if err != nil {
		// Dispatcher already closed: Close cancelled the foreign side,
		// only local bookkeeping can remain.
		h.cancel(nil)
		return
	}
	defer d.release()

	d.mu.Lock()
	if d.hooks != nil {
		delete(d.hooks, h)
	}
	d.mu.Unlock()

	h.cancel(handle)
}

// cancel performs the foreign cancellation and slot release. A nil
// dispatcher handle means the foreign side is already gone and only local
// bookkeeping remains.
func (h *Hook) cancel(dh *C.cs_dispatcher) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done {
		return
	}
	h.done = true

	if dh != nil && h.handle != nil {
		// Blocks until the dispatcher confirms quiescence for this hook.
		C.cs_hook_cancel(dh, h.handle)
	}
	h.handle = nil

	// Only now is it safe to drop the pin on the callback and target.
	if h.slot != 0 {
		slots.remove(h.slot)
		h.slot = 0
	}
}

// Absent reports whether this hook was registered without a callback.
func (h *Hook) Absent() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.handle != nil && C.cs_hook_is_absent(h.handle) != 0
}
