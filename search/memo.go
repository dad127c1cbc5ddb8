package search

// soloKey identifies a single-actor state.
type soloKey struct {
	pos  int32
	time uint32
	mask Mask
}

// duoKey identifies a two-actor state. (pos1,time1) and (pos2,time2) swapped
// form a distinct key unless symmetry reduction is enabled.
type duoKey struct {
	pos1  int32
	time1 uint32
	pos2  int32
	time2 uint32
	mask  Mask
}

// canonical orders the two actor sub-states so that swapped keys coincide.
func (k duoKey) canonical() duoKey {
	if k.pos1 > k.pos2 || (k.pos1 == k.pos2 && k.time1 > k.time2) {
		k.pos1, k.pos2 = k.pos2, k.pos1
		k.time1, k.time2 = k.time2, k.time1
	}

	return k
}

// memo is the explicit memo table of one engine invocation. It is never
// shared between goroutines.
type memo[K comparable] struct {
	table map[K]uint32
	hits  uint64
}

func newMemo[K comparable]() *memo[K] {
	return &memo[K]{table: make(map[K]uint32)}
}

func (m *memo[K]) get(k K) (uint32, bool) {
	v, ok := m.table[k]
	if ok {
		m.hits++
	}

	return v, ok
}

func (m *memo[K]) put(k K, v uint32) { m.table[k] = v }

func (m *memo[K]) len() int { return len(m.table) }
