package isovt

import (
	"testing"
	"time"

	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
	"github.com/agrielectronics/isovt/internal/transport"
)

// fakeNetwork is a minimal transport.NetworkStack for tests: SendFrame
// records every frame sent, and test code pushes inbound frames directly
// onto the in channel.
type fakeNetwork struct {
	in   chan transport.Frame
	sent []transport.Frame
	fail bool
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{in: make(chan transport.Frame, 32)}
}

func (f *fakeNetwork) SendFrame(fr transport.Frame, onComplete func(bool)) bool {
	if f.fail {
		if onComplete != nil {
			onComplete(false)
		}
		return false
	}
	f.sent = append(f.sent, fr)
	if onComplete != nil {
		onComplete(true)
	}
	return true
}

func (f *fakeNetwork) Frames() <-chan transport.Frame { return f.in }

func (f *fakeNetwork) PartnerOnline(uint8) bool { return true }

func vtStatusFrame() transport.Frame {
	data := make([]byte, protocol.FrameSize)
	data[0] = byte(protocol.FuncVTStatus)
	return transport.Frame{PGN: protocol.PGNVTToECU, Data: data}
}

func responseFrame(fn protocol.Function, success bool) transport.Frame {
	data := make([]byte, protocol.FrameSize)
	for i := range data {
		data[i] = 0xFF
	}
	data[0] = byte(fn)
	if !success {
		data[1] = 1
	} else {
		data[1] = 0
	}
	return transport.Frame{PGN: protocol.PGNVTToECU, Data: data}
}

// getMemoryResponseFrame builds a Get Memory response with the
// enough-memory flag at byte 3, 0 = enough memory, 1 = insufficient.
func getMemoryResponseFrame(enoughMemory bool) transport.Frame {
	data := make([]byte, protocol.FrameSize)
	for i := range data {
		data[i] = 0xFF
	}
	data[0] = byte(protocol.FuncGetMemory)
	if enoughMemory {
		data[3] = 0
	} else {
		data[3] = 1
	}
	return transport.Frame{PGN: protocol.PGNVTToECU, Data: data}
}

func TestBringUpSequenceReachesConnected(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net)
	c.RegisterObjectPool([]byte{1, 2, 3})
	c.Initialize(false)

	now := time.Now()
	net.in <- vtStatusFrame()
	c.Update(now)

	if got := c.GetState(); got != state.WaitForGetMemoryResponse {
		t.Fatalf("state after VT status = %s, want WaitForGetMemoryResponse", got)
	}

	net.in <- getMemoryResponseFrame(true)
	c.Update(now)
	if got := c.GetState(); got != state.WaitForGetNumberSoftkeysResponse {
		t.Fatalf("state after GetMemory response = %s", got)
	}

	net.in <- responseFrame(protocol.FuncGetNumberOfSoftKeys, true)
	c.Update(now)
	if got := c.GetState(); got != state.WaitForGetTextFontDataResponse {
		t.Fatalf("state after GetNumberOfSoftKeys response = %s", got)
	}

	net.in <- responseFrame(protocol.FuncGetTextFontData, true)
	c.Update(now)
	if got := c.GetState(); got != state.WaitForGetHardwareResponse {
		t.Fatalf("state after GetTextFontData response = %s", got)
	}

	net.in <- responseFrame(protocol.FuncGetHardware, true)
	c.Update(now)
	if got := c.GetState(); got != state.WaitForEndOfObjectPoolResponse {
		t.Fatalf("state after GetHardware response = %s, want WaitForEndOfObjectPoolResponse", got)
	}

	net.in <- responseFrame(protocol.FuncEndOfObjectPool, true)
	c.Update(now)
	if got := c.GetState(); got != state.Connected {
		t.Fatalf("state after EndOfObjectPool response = %s, want Connected", got)
	}
}

func TestCommandsRejectedBeforeConnected(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net)
	if c.SendHideShowObject(1, true) {
		t.Fatalf("expected SendHideShowObject to be rejected before Connected")
	}
	if len(net.sent) != 0 {
		t.Fatalf("expected no frames sent")
	}
}

func TestStatusTimeoutResetsPoolUploadedFlags(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net, WithStatusTimeout(10*time.Millisecond))
	c.RegisterObjectPool([]byte{1, 2, 3})
	c.Initialize(false)

	base := time.Now()
	net.in <- vtStatusFrame()
	c.Update(base)

	// advance every bring-up response to Connected with an uploaded pool
	net.in <- getMemoryResponseFrame(true)
	c.Update(base)
	for _, fn := range []protocol.Function{
		protocol.FuncGetNumberOfSoftKeys,
		protocol.FuncGetTextFontData, protocol.FuncGetHardware,
	} {
		net.in <- responseFrame(fn, true)
		c.Update(base)
	}
	net.in <- responseFrame(protocol.FuncEndOfObjectPool, true)
	c.Update(base)
	if c.GetState() != state.Connected {
		t.Fatalf("expected Connected before simulating status loss")
	}

	later := base.Add(20 * time.Millisecond)
	c.Update(later)
	if got := c.GetState(); got != state.WaitForPartnerVTStatus {
		t.Fatalf("state after status timeout = %s, want WaitForPartnerVTStatus", got)
	}
	if c.pipeline.Done() {
		t.Fatalf("expected pipeline reset to not-done after status timeout")
	}
}

func TestSendFailsWhenNetworkRejectsFrame(t *testing.T) {
	net := newFakeNetwork()
	net.fail = true
	c := NewClient(0x26, 0x27, net)
	c.RegisterObjectPool([]byte{1, 2, 3})
	if c.sendWorkingSetMasterClaim() {
		t.Fatalf("expected send failure with fail=true network")
	}
}
