// Package sched implements the retry-flag bit-vector and the single Tick
// entry point the root client calls on every Update(), matching spec.md
// §4.6's update() ordering: drain inbound, check the VT-status timeout,
// advance state-machine timers, check whether a heartbeat is due, then
// attempt and clear any pending retry flags.
package sched

// Flag identifies one deferred action the scheduler retries until it
// succeeds.
type Flag uint8

const (
	// SendWorkingSetMaintenance marks that the 1 Hz working-set
	// maintenance message is due and has not yet been sent successfully
	// this period.
	SendWorkingSetMaintenance Flag = iota
	numFlags
)

// RetryFlags is a small bit-vector of pending retried actions.
type RetryFlags struct {
	bits uint8
}

func (f *RetryFlags) Set(flag Flag) {
	f.bits |= 1 << flag
}

func (f *RetryFlags) Clear(flag Flag) {
	f.bits &^= 1 << flag
}

func (f *RetryFlags) IsSet(flag Flag) bool {
	return f.bits&(1<<flag) != 0
}
