package isovt

import (
	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
	"github.com/agrielectronics/isovt/internal/transport"
)

// send transmits a fixed-size command frame built by fb, tagging it with
// the PGN for working-set-to-VT traffic and this client's addressing.
// It returns false if the frame could not even be queued by the network
// stack (spec.md §7: Send* methods report admission failure via bool,
// never block or retry themselves — retries belong to the scheduler).
func (c *Client) send(fb *protocol.FrameBuilder) bool {
	c.mu.Lock()
	network := c.network
	src := c.sourceAddress
	dst := c.partnerAddress
	c.mu.Unlock()

	if network == nil {
		return false
	}
	f := transport.Frame{
		PGN:           protocol.PGNECUToVT,
		SourceAddress: src,
		DestAddress:   dst,
		Data:          fb.Slice(),
	}
	ok := network.SendFrame(f, nil)
	if ok && c.metrics != nil {
		c.metrics.FrameSent()
	}
	return ok
}

// sendRaw transmits an already-built payload (used by the object pool
// transfer path, whose chunks are not fixed 8-byte frames).
func (c *Client) sendRaw(data []byte) bool {
	c.mu.Lock()
	network := c.network
	src := c.sourceAddress
	dst := c.partnerAddress
	c.mu.Unlock()

	if network == nil {
		return false
	}
	f := transport.Frame{
		PGN:           protocol.PGNECUToVT,
		SourceAddress: src,
		DestAddress:   dst,
		Data:          data,
	}
	ok := network.SendFrame(f, nil)
	if ok && c.metrics != nil {
		c.metrics.FrameSent()
	}
	return ok
}

func (c *Client) sendWorkingSetMasterClaim() bool {
	fb := protocol.NewFrame(protocol.FuncSelectActiveWorkingSet)
	return c.send(fb)
}

func (c *Client) sendWorkingSetMaintenance() bool {
	fb := protocol.NewFrame(protocol.FuncWorkingSetMaintenance).PutU8(0xFF)
	return c.send(fb)
}

func (c *Client) sendGetMemoryRequest() bool {
	return c.send(protocol.NewFrame(protocol.FuncGetMemory))
}

func (c *Client) sendGetNumberOfSoftKeysRequest() bool {
	return c.send(protocol.NewFrame(protocol.FuncGetNumberOfSoftKeys))
}

func (c *Client) sendGetTextFontDataRequest() bool {
	return c.send(protocol.NewFrame(protocol.FuncGetTextFontData))
}

func (c *Client) sendGetHardwareRequest() bool {
	return c.send(protocol.NewFrame(protocol.FuncGetHardware))
}

func (c *Client) sendGetVersionsRequest() bool {
	return c.send(protocol.NewFrame(protocol.FuncGetVersions))
}

func (c *Client) sendEndOfObjectPool() bool {
	return c.send(protocol.NewFrame(protocol.FuncEndOfObjectPool))
}

// pumpObjectPoolUpload sends as many pending object-pool chunks as the
// pipeline currently offers. handleBringUpResponse calls it once on entry
// to UploadObjectPool, and it loops until the pipeline is exhausted or a
// chunk fails — chunk send outcomes here are treated as synchronous for a
// single-chunk-in-flight design matching spec.md §4.2: the pipeline does
// not pipeline multiple in-flight chunks.
func (c *Client) pumpObjectPoolUpload() {
	for {
		c.mu.Lock()
		chunk, ok := c.pipeline.Next()
		failed := c.pipeline.Failed()
		c.mu.Unlock()
		if !ok {
			if failed {
				c.logf("object pool source failed, upload aborted")
				c.setState(state.Failed)
				return
			}
			c.setState(state.SendEndOfObjectPool)
			c.sendEndOfObjectPool()
			c.setState(state.WaitForEndOfObjectPoolResponse)
			return
		}
		sent := c.sendRaw(chunk)
		c.mu.Lock()
		c.pipeline.Complete(sent, len(chunk))
		c.mu.Unlock()
		if sent && c.metrics != nil {
			c.metrics.PoolBytesUploaded(float64(len(chunk)))
		}
		if !sent {
			c.logf("object pool chunk send failed, upload aborted")
			c.setState(state.Failed)
			return
		}
	}
}
