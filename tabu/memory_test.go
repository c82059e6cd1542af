package tabu

import "testing"

func TestMemory_TenureWindow(t *testing.T) {
	m := newMemory[string](4)
	m.record("swap(1,2)", 3, 2)

	for it := 4; it <= 5; it++ {
		if !m.isTabu("swap(1,2)", it) {
			t.Fatalf("move must be tabu at iteration %d", it)
		}
	}
	if m.isTabu("swap(1,2)", 6) {
		t.Fatalf("move must expire strictly after its tenure")
	}
}

func TestMemory_UnknownMove(t *testing.T) {
	m := newMemory[string](4)
	if m.isTabu("swap(1,2)", 1) {
		t.Fatalf("unrecorded move must not be tabu")
	}
}

func TestMemory_CapacityEvictsOldest(t *testing.T) {
	m := newMemory[string](2)
	m.record("a", 1, 10)
	m.record("b", 2, 10)
	m.record("c", 3, 10)

	if m.isTabu("a", 4) {
		t.Fatalf("oldest entry must be evicted at capacity")
	}
	if !m.isTabu("b", 4) || !m.isTabu("c", 4) {
		t.Fatalf("younger entries must survive eviction")
	}
}

func TestMemory_ExpiredEvictedBeforeLive(t *testing.T) {
	m := newMemory[string](2)
	m.record("a", 1, 2) // expires after iteration 3
	m.record("b", 2, 10)
	m.record("c", 5, 10) // "a" is expired by now; "b" must survive

	if !m.isTabu("b", 6) {
		t.Fatalf("live entry must not be evicted while an expired one remains")
	}
	if !m.isTabu("c", 6) {
		t.Fatalf("new entry must be recorded")
	}
}

func TestMemory_RerecordExtends(t *testing.T) {
	m := newMemory[string](2)
	m.record("a", 1, 2)
	m.record("a", 2, 2) // extends to iteration 4
	m.record("b", 3, 2) // evicts the stale first slot of "a"

	if !m.isTabu("a", 4) {
		t.Fatalf("evicting a stale slot must not release the re-recorded move")
	}
	if m.isTabu("a", 5) {
		t.Fatalf("extended entry must still expire")
	}
}

func TestMemory_ZeroCapacityRecordsNothing(t *testing.T) {
	m := newMemory[string](0)
	m.record("a", 1, 10)
	if m.isTabu("a", 2) {
		t.Fatalf("zero-capacity memory must stay empty")
	}
}
