package gamemap

import "cinder-roguelike/internal/item"

// PileEntry is one aging stack inside an ItemPile.
type PileEntry struct {
	Item     *item.Definition
	Amount   int
	DropTurn int
}

// ItemPile is the ordered set of stacks lying on one cell.
type ItemPile struct {
	entries []*PileEntry
}

// NewItemPile returns an empty pile.
func NewItemPile() *ItemPile { return &ItemPile{} }

// Add puts amount units of d on the pile. Stackable items top up an entry
// of the same item dropped on the same turn; the rest opens new entries.
func (p *ItemPile) Add(d *item.Definition, amount, dropTurn int) {
	if d == nil || amount <= 0 {
		return
	}
	if d.Stackable {
		for _, e := range p.entries {
			if e.Item != d || e.DropTurn != dropTurn || e.Amount >= d.MaxStack {
				continue
			}
			n := min(amount, d.MaxStack-e.Amount)
			e.Amount += n
			amount -= n
			if amount == 0 {
				return
			}
		}
	}
	for amount > 0 {
		n := min(amount, d.MaxStack)
		p.entries = append(p.entries, &PileEntry{Item: d, Amount: n, DropTurn: dropTurn})
		amount -= n
	}
}

// Entries returns a copy of the entries in insertion order.
func (p *ItemPile) Entries() []PileEntry {
	out := make([]PileEntry, len(p.entries))
	for i, e := range p.entries {
		out[i] = *e
	}
	return out
}

// IsEmpty reports whether the pile holds nothing.
func (p *ItemPile) IsEmpty() bool { return len(p.entries) == 0 }

// Count returns the total units of d on the pile.
func (p *ItemPile) Count(d *item.Definition) int {
	total := 0
	for _, e := range p.entries {
		if e.Item == d {
			total += e.Amount
		}
	}
	return total
}

// oldest returns the index of the entry with the lowest drop turn among
// those accepted by match; ties go to the earliest entry.
func (p *ItemPile) oldest(match func(*PileEntry) bool) int {
	best := -1
	for i, e := range p.entries {
		if !match(e) {
			continue
		}
		if best < 0 || e.DropTurn < p.entries[best].DropTurn {
			best = i
		}
	}
	return best
}

// Representative returns the item of the oldest entry, or nil.
func (p *ItemPile) Representative() *item.Definition {
	i := p.oldest(func(*PileEntry) bool { return true })
	if i < 0 {
		return nil
	}
	return p.entries[i].Item
}

// TakeOne removes one unit of d from its oldest entry.
func (p *ItemPile) TakeOne(d *item.Definition) bool {
	i := p.oldest(func(e *PileEntry) bool { return e.Item == d })
	if i < 0 {
		return false
	}
	e := p.entries[i]
	e.Amount--
	if e.Amount <= 0 {
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
	}
	return true
}

// RemoveExpired drops entries whose age reaches ttl and returns how many
// were removed.
func (p *ItemPile) RemoveExpired(currentTurn, ttl int) int {
	kept := p.entries[:0]
	for _, e := range p.entries {
		if currentTurn-e.DropTurn < ttl {
			kept = append(kept, e)
		}
	}
	removed := len(p.entries) - len(kept)
	clear(p.entries[len(kept):])
	p.entries = kept
	return removed
}

// PickupItemAt returns what the player scoops up from the bare ground at
// (x, y): dirt from walkable normal, burnt or oily ground, else nil.
func (m *GameMap) PickupItemAt(x, y int, core item.CoreItems) *item.Definition {
	if !m.IsWalkable(x, y) {
		return nil
	}
	switch m.GroundAt(x, y) {
	case GroundNormal, GroundBurnt, GroundOil:
		return core.DirtClod
	}
	return nil
}
