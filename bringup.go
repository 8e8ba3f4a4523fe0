package isovt

import (
	"time"

	"github.com/agrielectronics/isovt/internal/capability"
	"github.com/agrielectronics/isovt/internal/dispatch"
	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
	"github.com/agrielectronics/isovt/internal/transport"
)

// checkStatusTimeout implements the status-loss reconnect: if the client
// is Connected (or waiting on the initial VT status) and no VT status
// message has arrived within statusTimeout, every registered pool is
// marked not-uploaded and the state machine restarts bring-up from
// WaitForPartnerVTStatus.
func (c *Client) checkStatusTimeout(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != state.Connected && c.state != state.WaitForPartnerVTStatus {
		return false
	}
	if c.live.LastReceiptUnixNano == 0 {
		// No status ever received yet, so there is no gap to measure;
		// advanceStateMachine applies no response timeout to
		// WaitForPartnerVTStatus either, so the client keeps waiting.
		return false
	}
	elapsed := now.Sub(time.Unix(0, c.live.LastReceiptUnixNano))
	if elapsed < c.statusTimeout {
		return false
	}

	c.logf("VT status timeout after %s, resetting bring-up", elapsed)
	c.pipeline.ResetAll()
	c.capabilities = capability.Snapshot{}
	c.transitionTo(state.WaitForPartnerVTStatus)
	return true
}

// advanceStateMachine checks the current state's response timeout and
// either retries the outbound request that started the wait, or
// (for WaitForPartnerVTStatus) simply keeps waiting since that state has
// no request of its own to retry — it ends the moment a VT status frame
// arrives, handled in drainInbound. Per spec.md §4.1, a first timeout
// retries the request once; a second consecutive timeout in the same
// wait state is terminal and transitions to Failed.
func (c *Client) advanceStateMachine(now time.Time) {
	c.mu.Lock()
	cur := c.state
	timedOut := state.IsWaiting(cur) && cur != state.WaitForPartnerVTStatus && c.stateTimer.TimedOut(now, c.responseTimeout)
	alreadyRetried := c.timedOutOnce
	c.mu.Unlock()

	if !timedOut {
		return
	}

	if alreadyRetried {
		c.logf("second response timeout in state %s, failing", cur)
		c.setState(state.Failed)
		return
	}

	c.logf("timed out in state %s, retrying", cur)
	switch cur {
	case state.WaitForGetMemoryResponse:
		c.sendGetMemoryRequest()
	case state.WaitForGetNumberSoftkeysResponse:
		c.sendGetNumberOfSoftKeysRequest()
	case state.WaitForGetTextFontDataResponse:
		c.sendGetTextFontDataRequest()
	case state.WaitForGetHardwareResponse:
		c.sendGetHardwareRequest()
	case state.WaitForGetVersionsResponse:
		c.sendGetVersionsRequest()
	case state.WaitForEndOfObjectPoolResponse:
		c.sendEndOfObjectPool()
	case state.WaitForLoadVersionResponse, state.WaitForDeleteVersionResponse:
		c.logf("no response to version command in state %s, returning to Connected", cur)
		c.setState(state.Connected)
		return
	}
	c.mu.Lock()
	c.timedOutOnce = true
	c.stateTimer.Enter(now)
	c.mu.Unlock()
}

// drainInbound processes every currently queued inbound frame from the
// NetworkStack, dispatching events and correlating bring-up responses
// against the current wait state.
func (c *Client) drainInbound(now time.Time) {
	if c.network == nil {
		return
	}
	for {
		select {
		case f, ok := <-c.network.Frames():
			if !ok {
				return
			}
			c.handleFrame(f, now)
		default:
			return
		}
	}
}

func (c *Client) handleFrame(f transport.Frame, now time.Time) {
	if len(f.Data) == 0 {
		return
	}
	if c.metrics != nil {
		c.metrics.FrameReceived()
	}
	fn := protocol.Function(f.Data[0])

	switch fn {
	case protocol.FuncSoftKeyActivation:
		c.callbacks.DispatchSoftKey(dispatch.DecodeSoftKeyEvent(f.Data))
		return
	case protocol.FuncButtonActivation:
		c.callbacks.DispatchButton(dispatch.DecodeButtonEvent(f.Data))
		return
	case protocol.FuncPointingEvent:
		c.callbacks.DispatchPointing(dispatch.DecodePointingEvent(f.Data))
		return
	case protocol.FuncVTSelectInputObject:
		c.callbacks.DispatchSelectInputObject(dispatch.DecodeSelectInputObjectEvent(f.Data))
		return
	case protocol.FuncVTStatus:
		c.handleVTStatus(f.Data, now)
		return
	}

	c.mu.Lock()
	cur := c.state
	c.mu.Unlock()

	expected, hasExpected := dispatch.ExpectedResponse(cur)
	if !hasExpected || expected != fn {
		if dispatch.IsBringUpResponse(fn) {
			c.logf("dropping out-of-sequence bring-up response %#x in state %s", byte(fn), cur)
		}
		return
	}

	c.handleBringUpResponse(fn, f.Data)
}

func (c *Client) handleVTStatus(data []byte, now time.Time) {
	c.mu.Lock()
	c.live.ActiveWorkingSetMasterAddress = data[1]
	c.live.ActiveDataMaskObjectID = protocol.GetU16(data, 2)
	c.live.ActiveSoftKeyMaskObjectID = protocol.GetU16(data, 4)
	c.live.BusyCodesBitfield = uint16(data[6])
	c.live.CurrentCommandFunctionCode = data[7]
	c.live.LastReceiptUnixNano = now.UnixNano()
	cur := c.state
	c.mu.Unlock()

	if cur == state.WaitForPartnerVTStatus {
		c.setState(state.SendWorkingSetMasterClaim)
		c.sendWorkingSetMasterClaim()
		c.setState(state.ReadyForObjectPool)
		cur = state.ReadyForObjectPool
	}

	if cur == state.ReadyForObjectPool {
		c.mu.Lock()
		poolsRegistered := c.pipeline.Pools() > 0
		c.mu.Unlock()
		if !poolsRegistered {
			// Remain in ReadyForObjectPool: the requested memory size is
			// the sum of declared pool sizes, meaningless with none
			// registered yet (spec.md §4.1.4). No timeout applies here;
			// the next VT status message checks again.
			return
		}

		c.sendGetMemoryRequest()
		c.setState(state.WaitForGetMemoryResponse)
	}
}

func (c *Client) handleBringUpResponse(fn protocol.Function, data []byte) {
	switch fn {
	case protocol.FuncGetMemory:
		c.mu.Lock()
		c.capabilities.ApplyGetMemoryResponse(data)
		available := c.capabilities.MemoryAvailable
		c.mu.Unlock()
		if !available {
			c.logf("VT reports insufficient memory for requested object pool")
			c.setState(state.Failed)
			return
		}
		c.sendGetNumberOfSoftKeysRequest()
		c.setState(state.WaitForGetNumberSoftkeysResponse)

	case protocol.FuncGetNumberOfSoftKeys:
		c.mu.Lock()
		c.capabilities.ApplyGetNumberOfSoftkeysResponse(data)
		c.mu.Unlock()
		c.sendGetTextFontDataRequest()
		c.setState(state.WaitForGetTextFontDataResponse)

	case protocol.FuncGetTextFontData:
		c.mu.Lock()
		c.capabilities.ApplyGetTextFontDataResponse(data)
		c.mu.Unlock()
		c.sendGetHardwareRequest()
		c.setState(state.WaitForGetHardwareResponse)

	case protocol.FuncGetHardware:
		c.mu.Lock()
		c.capabilities.ApplyGetHardwareResponse(data)
		c.mu.Unlock()
		c.setState(state.UploadObjectPool)
		c.pumpObjectPoolUpload()

	case protocol.FuncEndOfObjectPool:
		success := data[1] == 0
		if success {
			c.setState(state.Connected)
		} else {
			c.logf("end of object pool rejected, error code %d", data[1])
			c.setState(state.Failed)
		}

	case protocol.FuncGetVersionsResponse:
		c.setState(state.Connected)

	case protocol.FuncLoadVersion:
		if data[1] == 0 {
			c.setState(state.Connected)
		} else {
			c.mu.Lock()
			c.pipeline.ResetAll()
			c.mu.Unlock()
			c.setState(state.UploadObjectPool)
			c.pumpObjectPoolUpload()
		}

	case protocol.FuncDeleteVersion:
		c.setState(state.Connected)
	}
}
