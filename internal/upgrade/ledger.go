package upgrade

// State is the mutable purchase state of one upgrade. Progress is vestigial
// bookkeeping for the purchase flash animation; purchases always advance
// exactly one level.
type State struct {
	Level    int
	Progress int
}

// Ledger maps upgrade ids to their purchase state across every category.
type Ledger struct {
	states map[string]*State
}

// NewLedger creates a ledger with every known upgrade at level 0.
func NewLedger() *Ledger {
	states := make(map[string]*State, len(definitions))
	for id := range definitions {
		states[id] = &State{}
	}
	return &Ledger{states: states}
}

// Level returns the current level of an upgrade (0 for unknown ids).
func (l *Ledger) Level(id string) int {
	if s, ok := l.states[id]; ok {
		return s.Level
	}
	return 0
}

// Increment advances an upgrade by one level and returns the new level.
func (l *Ledger) Increment(id string) int {
	s, ok := l.states[id]
	if !ok {
		return 0
	}
	s.Level++
	s.Progress++
	return s.Level
}

// NextCost returns the purchase price of the next level of an upgrade.
func (l *Ledger) NextCost(id string) int {
	return Cost(id, l.Level(id))
}
