package sched

import (
	"testing"
	"time"
)

func TestRetryFlagsSetClearIsSet(t *testing.T) {
	var f RetryFlags
	if f.IsSet(SendWorkingSetMaintenance) {
		t.Fatalf("expected not set initially")
	}
	f.Set(SendWorkingSetMaintenance)
	if !f.IsSet(SendWorkingSetMaintenance) {
		t.Fatalf("expected set")
	}
	f.Clear(SendWorkingSetMaintenance)
	if f.IsSet(SendWorkingSetMaintenance) {
		t.Fatalf("expected cleared")
	}
}

func TestTickSendsMaintenanceOnlyWhenConnectedAndDue(t *testing.T) {
	var flags RetryFlags
	sent := 0
	hooks := Hooks{
		IsConnected:               func() bool { return true },
		HeartbeatDue:              func(time.Time) bool { return true },
		SendWorkingSetMaintenance: func() bool { sent++; return true },
	}
	Tick(&flags, hooks, time.Unix(0, 0))
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
	if flags.IsSet(SendWorkingSetMaintenance) {
		t.Fatalf("expected flag cleared after successful send")
	}
}

func TestTickSkipsRestAfterStatusTimeout(t *testing.T) {
	var flags RetryFlags
	advanced := false
	hooks := Hooks{
		CheckStatusTimeout:  func(time.Time) bool { return true },
		AdvanceStateMachine: func(time.Time) { advanced = true },
	}
	Tick(&flags, hooks, time.Unix(0, 0))
	if advanced {
		t.Fatalf("expected AdvanceStateMachine skipped after status timeout")
	}
}

func TestTickRetainsFlagOnSendFailure(t *testing.T) {
	var flags RetryFlags
	flags.Set(SendWorkingSetMaintenance)
	hooks := Hooks{
		SendWorkingSetMaintenance: func() bool { return false },
	}
	Tick(&flags, hooks, time.Unix(0, 0))
	if !flags.IsSet(SendWorkingSetMaintenance) {
		t.Fatalf("expected flag retained on failed send")
	}
}
