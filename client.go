// Package isovt implements an ISO 11783-6 Virtual Terminal (VT) client:
// the connection bring-up state machine, the object-pool upload pipeline,
// the outbound command codec, and inbound event dispatch. It does not
// implement the CAN/ISO 11783 network stack itself, nor does it interpret
// application-level object-pool semantics — both are external
// collaborators reached through the transport.NetworkStack interface and
// the callback registries respectively.
package isovt

import (
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agrielectronics/isovt/internal/capability"
	"github.com/agrielectronics/isovt/internal/dispatch"
	"github.com/agrielectronics/isovt/internal/metrics"
	"github.com/agrielectronics/isovt/internal/pool"
	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/sched"
	"github.com/agrielectronics/isovt/internal/state"
	"github.com/agrielectronics/isovt/internal/transport"
)

// Default timing constants, used when no config overrides them (mirrors
// the original library's VT_STATUS_TIMEOUT_MS / WORKING_SET_MAINTENANCE
// _TIMEOUT_MS constants).
const (
	DefaultResponseTimeout      = 6 * time.Second
	DefaultStatusTimeout        = 3 * time.Second
	DefaultMaintenanceInterval  = 1 * time.Second
	DefaultWorkerTickInterval   = 10 * time.Millisecond
)

// Client is one ISOBUS VT client instance: one CAN source address talking
// to one VT server (partner address). All mutable fields are guarded by
// mu; Send* methods and Update() may be called from different goroutines
// (an application thread issuing commands, and the optional internal
// worker thread advancing the state machine).
type Client struct {
	mu sync.Mutex

	sourceAddress  uint8
	partnerAddress uint8

	network transport.NetworkStack
	logger  *log.Logger
	metrics *metrics.Metrics

	responseTimeout     time.Duration
	statusTimeout       time.Duration
	maintenanceInterval time.Duration
	workerTickInterval  time.Duration

	state        state.State
	stateTimer   state.Timer
	timedOutOnce bool // whether the current Wait*Response state has already retried once

	capabilities capability.Snapshot
	live         capability.LiveStatus

	pipeline    *pool.Pipeline
	callbacks   dispatch.Registry
	retryFlags  sched.RetryFlags

	lastMaintenanceSent time.Time
	initialized         bool
	workerStop          chan struct{}
	workerDone          chan struct{}
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger overrides the default logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetricsRegistry enables Prometheus instrumentation against reg. If
// never called, the client emits no metrics.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(c *Client) {
		c.metrics = metrics.New(reg)
	}
}

// WithResponseTimeout overrides DefaultResponseTimeout.
func WithResponseTimeout(d time.Duration) Option {
	return func(c *Client) { c.responseTimeout = d }
}

// WithStatusTimeout overrides DefaultStatusTimeout.
func WithStatusTimeout(d time.Duration) Option {
	return func(c *Client) { c.statusTimeout = d }
}

// WithMaintenanceInterval overrides DefaultMaintenanceInterval.
func WithMaintenanceInterval(d time.Duration) Option {
	return func(c *Client) { c.maintenanceInterval = d }
}

// WithWorkerTickInterval overrides DefaultWorkerTickInterval, the cadence
// of the internally managed goroutine started by Initialize(true).
func WithWorkerTickInterval(d time.Duration) Option {
	return func(c *Client) { c.workerTickInterval = d }
}

// NewClient constructs a Client that will claim sourceAddress and connect
// to the VT server at partnerAddress over network.
func NewClient(sourceAddress, partnerAddress uint8, network transport.NetworkStack, opts ...Option) *Client {
	c := &Client{
		sourceAddress:       sourceAddress,
		partnerAddress:      partnerAddress,
		network:             network,
		logger:              log.Default(),
		responseTimeout:     DefaultResponseTimeout,
		statusTimeout:       DefaultStatusTimeout,
		maintenanceInterval: DefaultMaintenanceInterval,
		workerTickInterval:  DefaultWorkerTickInterval,
		state:               state.Disconnected,
		pipeline:            pool.NewPipeline(byte(protocol.FuncObjectPoolTransfer)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetIsInitialized reports whether Initialize has been called and
// Terminate has not since.
func (c *Client) GetIsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// GetState returns the client's current bring-up state.
func (c *Client) GetState() state.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GetCapabilities returns a copy of the negotiated capability snapshot.
// Fields are zero-valued until the corresponding bring-up response has
// been processed.
func (c *Client) GetCapabilities() capability.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capabilities
}

// GetLiveStatus returns a copy of the most recently received VT status.
func (c *Client) GetLiveStatus() capability.LiveStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// RegisterObjectPool registers a contiguous in-memory object pool to be
// uploaded once bring-up reaches UploadObjectPool. Pools upload in
// registration order.
func (c *Client) RegisterObjectPool(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pipeline.Register(pool.NewContiguousSource(data))
}

// RegisterDynamicObjectPool registers a pool backed by a slice the caller
// may still be appending to; the pipeline reads its current length lazily.
func (c *Client) RegisterDynamicObjectPool(data *[]byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pipeline.Register(pool.NewDynamicSource(data))
}

// RegisterPagedObjectPool registers a pool backed by a chunk-provider
// callback, for pools too large to hold fully in memory.
func (c *Client) RegisterPagedObjectPool(totalSize uint32, provide pool.ChunkProviderFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pipeline.Register(pool.NewPagedSource(totalSize, provide))
}

// RegisterVTSoftKeyEventCallback subscribes cb to every softkey activation
// event. Duplicate registration of the same function value is permitted.
func (c *Client) RegisterVTSoftKeyEventCallback(cb dispatch.SoftKeyEventCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks.AddSoftKey(cb)
}

// RegisterVTButtonEventCallback subscribes cb to every button activation event.
func (c *Client) RegisterVTButtonEventCallback(cb dispatch.ButtonEventCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks.AddButton(cb)
}

// RegisterVTPointingEventCallback subscribes cb to every pointing event.
func (c *Client) RegisterVTPointingEventCallback(cb dispatch.PointingEventCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks.AddPointing(cb)
}

// RegisterVTSelectInputObjectEventCallback subscribes cb to every select
// input object event.
func (c *Client) RegisterVTSelectInputObjectEventCallback(cb dispatch.SelectInputObjectEventCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks.AddSelectInputObject(cb)
}

// Initialize begins the connection bring-up sequence. If spawnThread is
// true, Client starts and owns a goroutine that calls Update() every
// workerTickInterval until Terminate is called; otherwise the caller is
// responsible for calling Update() itself on some cadence.
func (c *Client) Initialize(spawnThread bool) {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.state = state.WaitForPartnerVTStatus
	c.stateTimer.Enter(time.Now())
	tickInterval := c.workerTickInterval
	c.mu.Unlock()

	c.logf("initialize: waiting for partner VT status from address %d", c.partnerAddress)

	if spawnThread {
		c.workerStop = make(chan struct{})
		c.workerDone = make(chan struct{})
		go c.workerLoop(tickInterval)
	}
}

// Terminate stops the internal worker goroutine, if any, and resets the
// client to Disconnected. It does not close the underlying NetworkStack,
// which the caller owns.
func (c *Client) Terminate() {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = false
	stop := c.workerStop
	done := c.workerDone
	c.state = state.Disconnected
	c.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

func (c *Client) workerLoop(tick time.Duration) {
	defer close(c.workerDone)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-c.workerStop:
			return
		case now := <-ticker.C:
			c.Update(now)
		}
	}
}

// Update drives one scheduler pass: draining inbound frames, checking
// timeouts, advancing the state machine, and sending the working-set
// maintenance heartbeat when due. Callers not using Initialize(true) must
// call this themselves at least every workerTickInterval.
func (c *Client) Update(now time.Time) {
	hooks := sched.Hooks{
		DrainInbound:              c.drainInbound,
		CheckStatusTimeout:        c.checkStatusTimeout,
		AdvanceStateMachine:       c.advanceStateMachine,
		IsConnected:               c.isConnected,
		HeartbeatDue:              c.heartbeatDue,
		SendWorkingSetMaintenance: c.sendWorkingSetMaintenanceOnce,
	}
	c.mu.Lock()
	flags := &c.retryFlags
	c.mu.Unlock()
	sched.Tick(flags, hooks, now)
}

func (c *Client) isConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == state.Connected
}

func (c *Client) heartbeatDue(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastMaintenanceSent) >= c.maintenanceInterval
}

func (c *Client) sendWorkingSetMaintenanceOnce() bool {
	ok := c.sendWorkingSetMaintenance()
	if ok {
		c.mu.Lock()
		c.lastMaintenanceSent = time.Now()
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.HeartbeatSent()
		}
	}
	return ok
}

func (c *Client) transitionTo(s state.State) {
	c.state = s
	c.stateTimer.Enter(time.Now())
	c.timedOutOnce = false
	if c.metrics != nil {
		c.metrics.StateTransition(s.String())
	}
	c.logf("state -> %s", s)
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf("isovt: "+format, args...)
	}
}

// setState is a locked helper used by command/dispatch code.
func (c *Client) setState(s state.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transitionTo(s)
}
