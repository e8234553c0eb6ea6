package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func mustMachine(t *testing.T, cfg MachineConfig) *Machine {
	t.Helper()
	m, err := NewMachine(cfg)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

func TestStartCycle_SampledDurationWithinDegradedBounds(t *testing.T) {
	// Property: for randomized valid configurations, the effective duration
	// always lies in [min/efficiency, max/efficiency].
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		min := 0.1 + rng.Float64()*5
		max := min + rng.Float64()*5
		eff := 0.1 + rng.Float64()*0.9
		m := mustMachine(t, MachineConfig{
			Name: "p", MinTime: min, MaxTime: max, Efficiency: eff,
			MaintenanceInterval: 1e9, FailureRate: 0,
		})

		ev, err := m.StartCycle(0, rng)
		if err != nil {
			t.Fatalf("StartCycle: %v", err)
		}
		lo, hi := min/eff, max/eff
		if ev.Duration < lo || ev.Duration > hi {
			t.Fatalf("config %d: duration %v outside [%v, %v]", i, ev.Duration, lo, hi)
		}
	}
}

func TestStartCycle_WhileDown_ReturnsStateError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, deterministicMachine("A"))
	m.status = StatusFailed

	_, err := m.StartCycle(0, rng)
	var serr *StateError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *StateError", err)
	}
	if serr.Status != StatusFailed {
		t.Errorf("StateError.Status = %s, want %s", serr.Status, StatusFailed)
	}
}

func TestCompleteCycle_FailureTakesPrecedenceOverMaintenance(t *testing.T) {
	// GIVEN a machine where both the failure draw (certain) and the
	// maintenance interval (reached on the first cycle) would trigger
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, MachineConfig{
		Name: "A", MinTime: 1.0, MaxTime: 1.0, Efficiency: 1.0,
		MaintenanceInterval: 0.5, FailureRate: 1e6,
	})
	ev, err := m.StartCycle(0, rng)
	if err != nil {
		t.Fatalf("StartCycle: %v", err)
	}

	// WHEN the cycle completes
	follow, err := m.CompleteCycle(ev, rng)
	if err != nil {
		t.Fatalf("CompleteCycle: %v", err)
	}

	// THEN the machine fails; maintenance is not entered
	if m.Status() != StatusFailed {
		t.Errorf("status = %s, want %s", m.Status(), StatusFailed)
	}
	if m.FailureCount() != 1 || m.MaintenanceCount() != 0 {
		t.Errorf("failures=%d maintenance=%d, want 1 and 0", m.FailureCount(), m.MaintenanceCount())
	}
	if len(follow) != 2 {
		t.Fatalf("follow-up events = %d, want 2", len(follow))
	}
	if follow[0].Kind() != EventFailureOccurred || follow[1].Kind() != EventRepairComplete {
		t.Errorf("follow-up kinds = %s, %s", follow[0].Kind(), follow[1].Kind())
	}
	if follow[1].At() <= ev.At() {
		t.Errorf("repair scheduled at %v, want after %v", follow[1].At(), ev.At())
	}
}

func TestCompleteCycle_MaintenanceOnExactInterval(t *testing.T) {
	// GIVEN deterministic 1-hour cycles and a 5-hour maintenance interval
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, MachineConfig{
		Name: "A", MinTime: 1.0, MaxTime: 1.0, Efficiency: 1.0,
		MaintenanceInterval: 5.0, FailureRate: 0,
	})

	ev, err := m.StartCycle(0, rng)
	if err != nil {
		t.Fatalf("StartCycle: %v", err)
	}
	// WHEN completing cycles 1 through 4
	for i := 0; i < 4; i++ {
		follow, err := m.CompleteCycle(ev, rng)
		if err != nil {
			t.Fatalf("cycle %d: %v", i+1, err)
		}
		// THEN the machine keeps running
		if len(follow) != 1 || follow[0].Kind() != EventOperationComplete {
			t.Fatalf("cycle %d: unexpected follow-ups %v", i+1, follow)
		}
		ev = follow[0].(*OperationCompleteEvent)
	}

	// WHEN the 5th cycle completes (cumulative operating hours reach 5.0)
	follow, err := m.CompleteCycle(ev, rng)
	if err != nil {
		t.Fatalf("cycle 5: %v", err)
	}

	// THEN maintenance starts on exactly the 5th cycle
	if m.Status() != StatusUnderMaintenance {
		t.Errorf("status = %s, want %s", m.Status(), StatusUnderMaintenance)
	}
	if m.MaintenanceCount() != 1 {
		t.Errorf("maintenanceCount = %d, want 1", m.MaintenanceCount())
	}
	if len(follow) != 2 || follow[0].Kind() != EventMaintenanceDue || follow[1].Kind() != EventMaintenanceComplete {
		t.Fatalf("unexpected follow-ups after 5th cycle: %v", follow)
	}

	// AND finishing maintenance resets the watermark and resumes
	done := follow[1].(*MaintenanceCompleteEvent)
	next, err := m.FinishMaintenance(done, rng)
	if err != nil {
		t.Fatalf("FinishMaintenance: %v", err)
	}
	if m.Status() != StatusOperational {
		t.Errorf("status after maintenance = %s, want %s", m.Status(), StatusOperational)
	}
	if m.opHoursAtLastMaintenance != m.cumulativeOperatingTime {
		t.Error("maintenance watermark not reset to cumulative operating time")
	}
	if len(next) != 1 || next[0].Kind() != EventOperationComplete {
		t.Errorf("unexpected follow-ups after maintenance: %v", next)
	}
}

func TestFinishRepair_AccruesOutageAsDowntime(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, MachineConfig{
		Name: "A", MinTime: 1.0, MaxTime: 1.0, Efficiency: 1.0,
		MaintenanceInterval: 1e9, FailureRate: 1e6,
	})
	ev, _ := m.StartCycle(0, rng)
	follow, err := m.CompleteCycle(ev, rng)
	if err != nil {
		t.Fatalf("CompleteCycle: %v", err)
	}
	repair := follow[1].(*RepairCompleteEvent)

	if _, err := m.FinishRepair(repair, rng); err != nil {
		t.Fatalf("FinishRepair: %v", err)
	}
	wantDowntime := repair.At() - ev.At()
	if m.TotalDowntime() != wantDowntime {
		t.Errorf("totalDowntime = %v, want %v", m.TotalDowntime(), wantDowntime)
	}
	if m.Status() != StatusOperational {
		t.Errorf("status = %s, want %s", m.Status(), StatusOperational)
	}
}

func TestFinishRepair_WhileOperational_ReturnsStateError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, deterministicMachine("A"))

	_, err := m.FinishRepair(NewRepairCompleteEvent(1.0, "A"), rng)
	var serr *StateError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *StateError", err)
	}
}

func TestHistory_ReturnsDefensiveCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, deterministicMachine("A"))
	ev, _ := m.StartCycle(0, rng)
	if _, err := m.CompleteCycle(ev, rng); err != nil {
		t.Fatalf("CompleteCycle: %v", err)
	}

	h := m.History()
	h[0] = -100
	if m.history[0] == -100 {
		t.Error("History must return a copy, not the internal slice")
	}
}

func TestReset_RestoresConstructedState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mustMachine(t, MachineConfig{
		Name: "A", MinTime: 1.0, MaxTime: 1.0, Efficiency: 1.0,
		MaintenanceInterval: 1e9, FailureRate: 1e6,
	})
	ev, _ := m.StartCycle(0, rng)
	if _, err := m.CompleteCycle(ev, rng); err != nil {
		t.Fatalf("CompleteCycle: %v", err)
	}

	m.Reset()

	if m.Status() != StatusOperational || m.CycleCount() != 0 || m.FailureCount() != 0 ||
		m.TotalDowntime() != 0 || len(m.History()) != 0 {
		t.Errorf("reset machine retains state: %+v", m)
	}
}
