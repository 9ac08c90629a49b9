package schedule

// Grid is a period × hands table of integers addressed by (beat, hand).
// Cells are stored row-major: index = beat*Hands + hand.
type Grid struct {
	Period int
	Hands  int
	cells  []int
}

// NewGrid allocates a zeroed grid. Non-positive dimensions yield an empty grid.
// Complexity: O(P×H).
func NewGrid(period, hands int) *Grid {
	if period < 0 {
		period = 0
	}
	if hands < 0 {
		hands = 0
	}

	return &Grid{Period: period, Hands: hands, cells: make([]int, period*hands)}
}

// InBounds reports whether (beat, hand) lies within the grid.
func (g *Grid) InBounds(beat, hand int) bool {
	return beat >= 0 && beat < g.Period && hand >= 0 && hand < g.Hands
}

// Index maps (beat, hand) to its row-major index.
func (g *Grid) Index(beat, hand int) int {
	return beat*g.Hands + hand
}

// Slot converts a row-major index back to (beat, hand).
func (g *Grid) Slot(idx int) Slot {
	return Slot{Beat: idx / g.Hands, Hand: idx % g.Hands}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the value stored at (beat, hand).
func (g *Grid) At(beat, hand int) int {
	return g.cells[g.Index(beat, hand)]
}

// Set stores v at (beat, hand).
func (g *Grid) Set(beat, hand, v int) {
	g.cells[g.Index(beat, hand)] = v
}

// Add adds delta to the value at (beat, hand).
func (g *Grid) Add(beat, hand, delta int) {
	g.cells[g.Index(beat, hand)] += delta
}

// NonZero lists the slots holding a nonzero value, in row-major order.
func (g *Grid) NonZero() []Slot {
	var slots []Slot
	for idx, v := range g.cells {
		if v != 0 {
			slots = append(slots, g.Slot(idx))
		}
	}

	return slots
}

// Rows returns a copy of the grid as one row per beat.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Period)
	for beat := range rows {
		rows[beat] = append([]int(nil), g.cells[beat*g.Hands:(beat+1)*g.Hands]...)
	}

	return rows
}
