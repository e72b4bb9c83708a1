// Package fault keeps local panics from unwinding across the foreign call
// boundary.
//
// A Go panic that unwinds through a cgo-exported function into C is
// undefined behavior from the C side. Every function exported to foreign
// code must therefore run its body under Contain, which intercepts the
// panic and flattens the outcome to a Status the foreign caller
// understands:
//
//	//export goOnEvent
//	func goOnEvent(slot C.uintptr_t, value C.int32_t) C.int32_t {
//		status, _ := fault.Contain("on_event", func() error {
//			return dispatch(uintptr(slot), int32(value))
//		})
//		return C.int32_t(status)
//	}
//
// Contain only intercepts unwinding faults. Faults that terminate the
// process outright (fatal runtime errors such as concurrent map writes,
// stack exhaustion, or out-of-memory) cannot be recovered and are fatal.
package fault
