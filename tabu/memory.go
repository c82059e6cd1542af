// Package tabu - bounded tabu memory.
package tabu

// memory is an iteration-stamped record of recently used moves: a ring of
// insertion-ordered slots bounded by capacity, plus a map for O(1) tabu
// lookups. All mutation happens on the driving goroutine; scans only read
// through isTabu against one snapshot per iteration.
type memory[M comparable] struct {
	slots  []slot[M]
	head   int
	size   int
	expiry map[M]int
}

// slot is one ring entry. A move recorded at iteration t with tenure k gets
// expiry t+k and stays tabu for iterations t+1 through t+k inclusive.
type slot[M comparable] struct {
	move   M
	expiry int
}

func newMemory[M comparable](capacity int) *memory[M] {
	return &memory[M]{
		slots:  make([]slot[M], capacity),
		expiry: make(map[M]int, capacity),
	}
}

// isTabu reports whether move is forbidden at the given iteration.
func (m *memory[M]) isTabu(move M, iteration int) bool {
	exp, ok := m.expiry[move]
	return ok && iteration <= exp
}

// record stores move at the given iteration with the given tenure. Expired
// entries are evicted lazily here; if the ring is still full afterwards,
// the oldest entry is dropped to keep the memory bounded.
func (m *memory[M]) record(move M, iteration, tenure int) {
	if len(m.slots) == 0 {
		return
	}
	for m.size > 0 && m.slots[m.head].expiry < iteration {
		m.evictHead()
	}
	if m.size == len(m.slots) {
		m.evictHead()
	}
	tail := (m.head + m.size) % len(m.slots)
	exp := iteration + tenure
	m.slots[tail] = slot[M]{move: move, expiry: exp}
	m.size++
	m.expiry[move] = exp
}

// evictHead drops the oldest ring entry. The map entry is removed only when
// it still belongs to that slot: re-recording a move leaves a stale slot
// behind, and its eviction must not release the move early.
func (m *memory[M]) evictHead() {
	oldest := m.slots[m.head]
	if exp, ok := m.expiry[oldest.move]; ok && exp == oldest.expiry {
		delete(m.expiry, oldest.move)
	}
	m.head = (m.head + 1) % len(m.slots)
	m.size--
}
