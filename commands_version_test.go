package isovt

import (
	"testing"
	"time"

	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
)

// bringUpToConnected drives a fresh client through the full bring-up
// sequence with all-success responses, returning it at state.Connected.
func bringUpToConnected(t *testing.T, net *fakeNetwork, c *Client, now time.Time) {
	t.Helper()
	net.in <- vtStatusFrame()
	c.Update(now)
	net.in <- getMemoryResponseFrame(true)
	c.Update(now)
	for _, fn := range []protocol.Function{
		protocol.FuncGetNumberOfSoftKeys,
		protocol.FuncGetTextFontData, protocol.FuncGetHardware,
	} {
		net.in <- responseFrame(fn, true)
		c.Update(now)
	}
	net.in <- responseFrame(protocol.FuncEndOfObjectPool, true)
	c.Update(now)
	if c.GetState() != state.Connected {
		t.Fatalf("bring-up did not reach Connected, got %s", c.GetState())
	}
}

func TestSendLoadVersionWaitsForEchoedResponse(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net)
	c.RegisterObjectPool([]byte{1, 2, 3})
	c.Initialize(false)

	now := time.Now()
	bringUpToConnected(t, net, c, now)

	if !c.SendLoadVersion("MYPOOL") {
		t.Fatalf("SendLoadVersion rejected while Connected")
	}
	if got := c.GetState(); got != state.WaitForLoadVersionResponse {
		t.Fatalf("state after SendLoadVersion = %s, want WaitForLoadVersionResponse", got)
	}

	net.in <- responseFrame(protocol.FuncLoadVersion, true)
	c.Update(now)
	if got := c.GetState(); got != state.Connected {
		t.Fatalf("state after successful load-version response = %s, want Connected", got)
	}
}

func TestSendLoadVersionFailureReuploadsPool(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net)
	c.RegisterObjectPool([]byte{1, 2, 3})
	c.Initialize(false)

	now := time.Now()
	bringUpToConnected(t, net, c, now)

	if !c.SendLoadVersion("MYPOOL") {
		t.Fatalf("SendLoadVersion rejected while Connected")
	}

	net.in <- responseFrame(protocol.FuncLoadVersion, false)
	c.Update(now)
	if got := c.GetState(); got != state.WaitForEndOfObjectPoolResponse {
		t.Fatalf("state after failed load-version response = %s, want WaitForEndOfObjectPoolResponse (re-upload started)", got)
	}
}

func TestSendDeleteVersionWaitsForEchoedResponse(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net)
	c.RegisterObjectPool([]byte{1, 2, 3})
	c.Initialize(false)

	now := time.Now()
	bringUpToConnected(t, net, c, now)

	if !c.SendDeleteVersion("MYPOOL") {
		t.Fatalf("SendDeleteVersion rejected while Connected")
	}
	if got := c.GetState(); got != state.WaitForDeleteVersionResponse {
		t.Fatalf("state after SendDeleteVersion = %s, want WaitForDeleteVersionResponse", got)
	}

	net.in <- responseFrame(protocol.FuncDeleteVersion, true)
	c.Update(now)
	if got := c.GetState(); got != state.Connected {
		t.Fatalf("state after delete-version response = %s, want Connected", got)
	}
}

func TestVersionCommandTimeoutReturnsToConnected(t *testing.T) {
	net := newFakeNetwork()
	c := NewClient(0x26, 0x27, net, WithResponseTimeout(10*time.Millisecond))
	c.RegisterObjectPool([]byte{1, 2, 3})
	c.Initialize(false)

	base := time.Now()
	bringUpToConnected(t, net, c, base)

	if !c.SendDeleteVersion("MYPOOL") {
		t.Fatalf("SendDeleteVersion rejected while Connected")
	}

	later := base.Add(20 * time.Millisecond)
	c.Update(later)
	if got := c.GetState(); got != state.Connected {
		t.Fatalf("state after version command timeout = %s, want Connected", got)
	}
}
