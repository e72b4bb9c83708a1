package callback

/*
#include <stdint.h>
*/
import "C"

import (
	"go.uber.org/zap"

	"github.com/wippyai/csnappy/errors"
	"github.com/wippyai/csnappy/fault"
)

// goDispatchTrampoline is the single function pointer the foreign
// dispatcher ever holds.
//
//export goDispatchTrampoline
func goDispatchTrampoline(slot C.uintptr_t, value C.int32_t) C.int32_t {
	return C.int32_t(dispatchSlot(uintptr(slot), int32(value)))
}

// dispatchSlot resolves the slot back to the registered callback and runs
// the body under fault containment, so no panic can unwind into the C
// caller.
func dispatchSlot(slot uintptr, value int32) fault.Status {
	reg, ok := slots.get(slot)
	if !ok {
		// Stale slot: the C contract makes this unreachable because
		// cancellation removes the hook before the slot, but a logged
		// status is still safer than a panic here.
		fault.Logger().Warn("dispatch on unregistered slot",
			zap.Error(errors.InvalidHandle(errors.PhaseDispatch, uint32(slot))))
		return fault.StatusError
	}

	st, err := fault.Contain("dispatch", func() error {
		reg.invoke(value)
		return nil
	})
	if err != nil && reg.disp != nil {
		reg.disp.recordFault(err)
	}
	return st
}
