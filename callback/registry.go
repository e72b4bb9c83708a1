package callback

import "sync"

// Func is a callback body without a target.
type Func func(value int32)

// TargetFunc is a callback body invoked with its registered target.
type TargetFunc func(target any, value int32)

// registration is the local half of a hook. Keeping target here (not across
// the boundary) both satisfies the cgo pointer-passing rules and pins the
// target for the life of the registration.
type registration struct {
	fn     Func
	tfn    TargetFunc
	target any
	disp   *Dispatcher
	valid  bool
}

func (r *registration) invoke(value int32) {
	if r.tfn != nil {
		r.tfn(r.target, value)
		return
	}
	if r.fn != nil {
		r.fn(value)
	}
}

// slotTable maps uintptr slots to registrations. Slot 0 is reserved and
// always invalid; freed slots are reused.
type slotTable struct {
	mu       sync.RWMutex
	entries  []registration
	freeList []uintptr
}

func newSlotTable() *slotTable {
	return &slotTable{
		entries:  make([]registration, 0, 16),
		freeList: make([]uintptr, 0, 8),
	}
}

func (t *slotTable) add(reg registration) uintptr {
	reg.valid = true

	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.freeList); n > 0 {
		slot := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[slot-1] = reg
		return slot
	}

	t.entries = append(t.entries, reg)
	return uintptr(len(t.entries))
}

// get returns a copy so that callers never hold a pointer into the entries
// slice, which add may reallocate.
func (t *slotTable) get(slot uintptr) (registration, bool) {
	if slot == 0 {
		return registration{}, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := slot - 1
	if idx >= uintptr(len(t.entries)) {
		return registration{}, false
	}
	r := t.entries[idx]
	if !r.valid {
		return registration{}, false
	}
	return r, true
}

func (t *slotTable) remove(slot uintptr) bool {
	if slot == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slot - 1
	if idx >= uintptr(len(t.entries)) {
		return false
	}
	r := &t.entries[idx]
	if !r.valid {
		return false
	}

	*r = registration{}
	t.freeList = append(t.freeList, slot)
	return true
}

func (t *slotTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries) - len(t.freeList)
}

// slots is the process-wide table consulted by the exported trampoline.
var slots = newSlotTable()
