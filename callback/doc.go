// Package callback implements a safe register/trigger/unregister protocol
// for handing Go functions to C code as function pointers.
//
// C code cannot hold Go pointers, so a registration never passes a Go value
// across the boundary directly. Instead the package registers the value in a
// local slot table and hands C a (trampoline, slot) pair; the exported
// trampoline looks the slot up again on every invocation. The trampoline
// body runs under fault.Contain, so a panicking callback reports a status
// code to C instead of unwinding through it.
//
// # Invocation shapes
//
// Three shapes are supported, each with its own safety contract:
//
//   - Global synchronous: Register(fn) then Trigger(v). The callback runs on
//     the triggering goroutine's thread, strictly within the dynamic extent
//     of Trigger. No synchronization is required of the callback body.
//
//   - Targeted synchronous: RegisterTarget(obj, fn) threads obj back through
//     every invocation. The slot table keeps obj reachable for the life of
//     the registration, so C never observes a collected target. Within the
//     synchronous regime the callback may freely mutate obj; no other
//     mutator runs concurrently.
//
//   - Asynchronous: after StartAsync the dispatcher's own C thread invokes
//     callbacks concurrently with all local goroutines. Shared state touched
//     by the callback body must be guarded by a mutex, channel, or atomics.
//
// # Unregistration
//
// Hook.Unregister is synchronous-complete: it blocks until the dispatcher
// guarantees no in-flight or future invocation of that hook, then releases
// the slot. A registered target may therefore be destroyed the moment
// Unregister returns, even under concurrent async triggering.
//
// A callback body must not register or unregister hooks on its own
// dispatcher: invocation passes hold the dispatcher lock, so doing so
// deadlocks.
//
// # Absent callbacks
//
// A nil Func is a valid registration. It crosses the boundary as a NULL
// function pointer in the same storage a present pointer uses; no sentinel
// value is reserved, and the dispatcher skips it during invocation.
package callback
