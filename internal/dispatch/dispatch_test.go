package dispatch

import (
	"testing"

	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
)

func TestDecodeSoftKeyEvent(t *testing.T) {
	data := []byte{0x00, 1, 0x10, 0x00, 0x20, 0x00, 3}
	e := DecodeSoftKeyEvent(data)
	if e.Activation != protocol.ActivationPressed || e.ObjectID != 0x0010 || e.ParentObjectID != 0x0020 || e.KeyNumber != 3 {
		t.Fatalf("got %+v", e)
	}
}

func TestRegistryDispatchInInsertionOrderAllowsDuplicates(t *testing.T) {
	var r Registry
	var order []int
	r.AddSoftKey(func(SoftKeyEvent) { order = append(order, 1) })
	r.AddSoftKey(func(SoftKeyEvent) { order = append(order, 2) })
	r.AddSoftKey(func(SoftKeyEvent) { order = append(order, 1) })

	r.DispatchSoftKey(SoftKeyEvent{})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 1 {
		t.Fatalf("order = %v", order)
	}

	r.RemoveSoftKeyAt(0)
	order = nil
	r.DispatchSoftKey(SoftKeyEvent{})
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("order after remove = %v", order)
	}
}

func TestExpectedResponseMatchesWaitState(t *testing.T) {
	fn, ok := ExpectedResponse(state.WaitForGetHardwareResponse)
	if !ok || fn != protocol.FuncGetHardware {
		t.Fatalf("got fn=%v ok=%v", fn, ok)
	}
	if _, ok := ExpectedResponse(state.Connected); ok {
		t.Fatalf("expected no correlated response for Connected")
	}
}
