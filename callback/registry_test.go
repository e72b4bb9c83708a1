package callback

import (
	"testing"

	"github.com/wippyai/csnappy/fault"
)

func TestSlotTable_AddGetRemove(t *testing.T) {
	tbl := newSlotTable()

	var hit int32
	slot := tbl.add(registration{fn: func(v int32) { hit = v }})
	if slot == 0 {
		t.Fatal("add returned reserved slot 0")
	}

	reg, ok := tbl.get(slot)
	if !ok {
		t.Fatal("get failed for live slot")
	}
	reg.invoke(42)
	if hit != 42 {
		t.Errorf("invoke routed to %d, want 42", hit)
	}

	if !tbl.remove(slot) {
		t.Fatal("remove failed for live slot")
	}
	if _, ok := tbl.get(slot); ok {
		t.Error("get should fail after remove")
	}
	if tbl.remove(slot) {
		t.Error("second remove should fail")
	}
}

func TestSlotTable_ZeroSlotInvalid(t *testing.T) {
	tbl := newSlotTable()
	if _, ok := tbl.get(0); ok {
		t.Error("slot 0 must never resolve")
	}
	if tbl.remove(0) {
		t.Error("slot 0 must not be removable")
	}
}

func TestSlotTable_Reuse(t *testing.T) {
	tbl := newSlotTable()

	a := tbl.add(registration{})
	b := tbl.add(registration{})
	tbl.remove(a)

	c := tbl.add(registration{})
	if c != a {
		t.Errorf("freed slot not reused: got %d, want %d", c, a)
	}
	if tbl.len() != 2 {
		t.Errorf("len = %d, want 2", tbl.len())
	}
	_ = b
}

func TestSlotTable_TargetedInvoke(t *testing.T) {
	tbl := newSlotTable()

	obj := &counterTarget{value: 5}
	slot := tbl.add(registration{
		target: obj,
		tfn: func(target any, v int32) {
			target.(*counterTarget).value = v
		},
	})

	reg, ok := tbl.get(slot)
	if !ok {
		t.Fatal("get failed")
	}
	reg.invoke(7)
	if obj.value != 7 {
		t.Errorf("target value = %d, want 7", obj.value)
	}
}

func TestSlotTable_StaleIndex(t *testing.T) {
	tbl := newSlotTable()
	if _, ok := tbl.get(999); ok {
		t.Error("out-of-range slot must not resolve")
	}
}

func TestDispatchSlot_Unregistered(t *testing.T) {
	// Slot 0 is reserved and never resolves.
	if st := dispatchSlot(0, 1); st != fault.StatusError {
		t.Errorf("dispatchSlot(0) = %v, want %v", st, fault.StatusError)
	}

	// A removed slot fails the status instead of invoking anything.
	var hit bool
	slot := slots.add(registration{fn: func(int32) { hit = true }})
	slots.remove(slot)
	if st := dispatchSlot(slot, 1); st != fault.StatusError {
		t.Errorf("dispatchSlot(removed) = %v, want %v", st, fault.StatusError)
	}
	if hit {
		t.Error("removed registration must not be invoked")
	}
}
