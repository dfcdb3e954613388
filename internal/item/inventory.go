package item

// DefaultMaxStacks is the stack limit of a new inventory.
const DefaultMaxStacks = 20

// Stack is one inventory entry.
type Stack struct {
	Item   *Definition
	Amount int
}

// Inventory is a bounded list of stacks plus six equipment slots.
// Every mutating method is all-or-nothing.
type Inventory struct {
	maxStacks int
	stacks    []*Stack
	equipped  [slotCount]*Definition
}

// NewInventory creates an inventory; maxStacks <= 0 selects DefaultMaxStacks.
func NewInventory(maxStacks int) *Inventory {
	if maxStacks <= 0 {
		maxStacks = DefaultMaxStacks
	}
	return &Inventory{maxStacks: maxStacks}
}

// MaxStacks returns the stack limit.
func (inv *Inventory) MaxStacks() int { return inv.maxStacks }

// Entries returns a snapshot of the stacks in order.
func (inv *Inventory) Entries() []Stack {
	out := make([]Stack, len(inv.stacks))
	for i, s := range inv.stacks {
		out[i] = *s
	}
	return out
}

// Snapshot captures the stacks in order for a later Restore.
func (inv *Inventory) Snapshot() []Stack { return inv.Entries() }

// Restore puts the stacks back exactly as snap recorded them, order
// included. Equipment slots are untouched.
func (inv *Inventory) Restore(snap []Stack) {
	clear(inv.stacks)
	inv.stacks = inv.stacks[:0]
	for _, s := range snap {
		inv.stacks = append(inv.stacks, &Stack{Item: s.Item, Amount: s.Amount})
	}
}

// Count returns the total amount of d carried (equipped items excluded).
func (inv *Inventory) Count(d *Definition) int {
	total := 0
	for _, s := range inv.stacks {
		if s.Item == d {
			total += s.Amount
		}
	}
	return total
}

// CanAdd reports whether amount units of d would fit.
func (inv *Inventory) CanAdd(d *Definition, amount int) bool {
	if d == nil || amount <= 0 {
		return false
	}
	return inv.room(d) >= amount
}

func (inv *Inventory) room(d *Definition) int {
	free := (inv.maxStacks - len(inv.stacks)) * d.MaxStack
	if d.Stackable {
		for _, s := range inv.stacks {
			if s.Item == d && s.Amount < d.MaxStack {
				free += d.MaxStack - s.Amount
			}
		}
	}
	return free
}

// Add stores amount units of d, topping up understocked stacks before
// opening new ones. Nothing is added unless everything fits.
func (inv *Inventory) Add(d *Definition, amount int) bool {
	if !inv.CanAdd(d, amount) {
		return false
	}
	remaining := amount
	if d.Stackable {
		for _, s := range inv.stacks {
			if s.Item != d || s.Amount >= d.MaxStack {
				continue
			}
			n := min(remaining, d.MaxStack-s.Amount)
			s.Amount += n
			remaining -= n
			if remaining == 0 {
				return true
			}
		}
	}
	for remaining > 0 {
		n := min(remaining, d.MaxStack)
		inv.stacks = append(inv.stacks, &Stack{Item: d, Amount: n})
		remaining -= n
	}
	return true
}

// Remove takes amount units of d, draining stacks front to back. It fails
// without change when fewer than amount are carried.
func (inv *Inventory) Remove(d *Definition, amount int) bool {
	if d == nil || amount <= 0 || inv.Count(d) < amount {
		return false
	}
	remaining := amount
	kept := inv.stacks[:0]
	for _, s := range inv.stacks {
		if s.Item == d && remaining > 0 {
			if s.Amount <= remaining {
				remaining -= s.Amount
				continue
			}
			s.Amount -= remaining
			remaining = 0
		}
		kept = append(kept, s)
	}
	clear(inv.stacks[len(kept):])
	inv.stacks = kept
	return true
}

// Equipped returns the item in slot, or nil.
func (inv *Inventory) Equipped(slot Slot) *Definition {
	if slot >= slotCount {
		return nil
	}
	return inv.equipped[slot]
}

// Equip moves one unit of d from the bag into its slot. A previous occupant
// goes back into the bag; if it cannot, nothing changes.
func (inv *Inventory) Equip(d *Definition) bool {
	slot, ok := SlotFor(d)
	if !ok {
		return false
	}
	snap := inv.Snapshot()
	if !inv.Remove(d, 1) {
		return false
	}
	if prev := inv.equipped[slot]; prev != nil {
		if !inv.Add(prev, 1) {
			inv.Restore(snap)
			return false
		}
	}
	inv.equipped[slot] = d
	return true
}

// Unequip returns the item in slot to the bag. It fails and leaves the slot
// equipped when the bag has no room.
func (inv *Inventory) Unequip(slot Slot) bool {
	cur := inv.Equipped(slot)
	if cur == nil || !inv.Add(cur, 1) {
		return false
	}
	inv.equipped[slot] = nil
	return true
}
