package sched

import "time"

// Hooks are the callbacks Tick drives in spec.md §4.6's fixed order. Each
// hook is supplied by the root client so this package stays decoupled
// from state/transport/dispatch concrete types and is exercised purely
// through fakes in tests.
type Hooks struct {
	// DrainInbound processes every currently queued inbound frame.
	DrainInbound func(now time.Time)

	// CheckStatusTimeout reports true (and should have already reset the
	// state machine) if the VT status heartbeat has been silent too long.
	CheckStatusTimeout func(now time.Time) bool

	// AdvanceStateMachine lets the bring-up state machine check its own
	// per-state response timeout and retry or progress accordingly.
	AdvanceStateMachine func(now time.Time)

	// HeartbeatDue reports whether the 1 Hz working-set maintenance
	// message is due, and is only consulted when Connected.
	HeartbeatDue func(now time.Time) bool

	// IsConnected reports whether the state machine is currently in the
	// Connected state, gating HeartbeatDue.
	IsConnected func() bool

	// SendWorkingSetMaintenance attempts to send the maintenance message
	// and reports whether it succeeded.
	SendWorkingSetMaintenance func() bool
}

// Tick runs one scheduler pass over flags using now, applying the fixed
// order: drain inbound, check status timeout, advance state machine
// timers, check heartbeat due, then attempt and clear pending flags. If
// CheckStatusTimeout reports true, the remaining steps for this tick are
// skipped (the state machine has just been reset and has nothing to
// advance or retry).
func Tick(flags *RetryFlags, hooks Hooks, now time.Time) {
	if hooks.DrainInbound != nil {
		hooks.DrainInbound(now)
	}
	if hooks.CheckStatusTimeout != nil && hooks.CheckStatusTimeout(now) {
		return
	}
	if hooks.AdvanceStateMachine != nil {
		hooks.AdvanceStateMachine(now)
	}
	if hooks.IsConnected != nil && hooks.IsConnected() {
		if hooks.HeartbeatDue != nil && hooks.HeartbeatDue(now) {
			flags.Set(SendWorkingSetMaintenance)
		}
	}
	if flags.IsSet(SendWorkingSetMaintenance) && hooks.SendWorkingSetMaintenance != nil {
		if hooks.SendWorkingSetMaintenance() {
			flags.Clear(SendWorkingSetMaintenance)
		}
	}
}
