package stringwars

// CycleState reports whether a Cycle has handed out an item yet.
type CycleState uint8

const (
	// Idle means Next has never been called.
	Idle CycleState = iota
	// Running means at least one item has been drawn. A Cycle never leaves
	// this state.
	Running
)

// Cycle replays a finite, non-empty pool indefinitely. Each call to Next
// returns the item at counter mod len(pool) and advances the counter.
//
// A Cycle never allocates after construction and never copies the pool.
// Each candidate gets its own Cycle so every candidate sees the same
// sequence of items.
type Cycle[T any] struct {
	pool    []T
	counter uint64
	state   CycleState
}

// NewCycle returns a Cycle over pool, which must not be empty and must not
// be mutated afterwards.
func NewCycle[T any](pool []T) *Cycle[T] {
	if len(pool) == 0 {
		panic("stringwars: cycle over empty pool")
	}
	return &Cycle[T]{pool: pool}
}

// Next returns the next item and its pool index.
func (c *Cycle[T]) Next() (T, int) {
	i := int(c.counter % uint64(len(c.pool)))
	c.counter++
	c.state = Running
	return c.pool[i], i
}

// State returns Idle before the first draw and Running afterwards.
func (c *Cycle[T]) State() CycleState {
	return c.state
}

// Len returns the pool size.
func (c *Cycle[T]) Len() int {
	return len(c.pool)
}
