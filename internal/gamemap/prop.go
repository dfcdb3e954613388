package gamemap

import (
	"cinder-roguelike/internal/item"
	"cinder-roguelike/internal/rng"
)

// ChestID is the prop id that behaves as a container.
const ChestID = "chest"

// ContainerMaxStacks bounds the contents of a container.
const ContainerMaxStacks = 20

// PropDef is a static object template loaded from content.
type PropDef struct {
	ID                string
	DisplayName       string
	SpriteID          string
	BlocksMovement    bool
	BlocksLOS         bool
	BlocksProjectiles bool
}

// Prop is a placed instance of a PropDef. Container contents are rolled
// lazily the first time the prop is opened.
type Prop struct {
	Def *PropDef

	lootSeed    uint64
	hasLootSeed bool
	rolled      bool
	contents    *item.Inventory
}

// NewProp returns an unrolled instance of def.
func NewProp(def *PropDef) *Prop {
	return &Prop{Def: def, contents: item.NewInventory(ContainerMaxStacks)}
}

// IsContainer reports whether the prop holds items.
func (p *Prop) IsContainer() bool { return p.Def != nil && p.Def.ID == ChestID }

// LootRolled reports whether the contents have been generated.
func (p *Prop) LootRolled() bool { return p.rolled }

// LootSeed returns the cached loot seed and whether it has been derived.
func (p *Prop) LootSeed() (uint64, bool) { return p.lootSeed, p.hasLootSeed }

// Contents returns a snapshot of the container's stacks.
func (p *Prop) Contents() []item.Stack { return p.contents.Entries() }

// Count returns how many units of d the container holds.
func (p *Prop) Count(d *item.Definition) int { return p.contents.Count(d) }

// EnsureLootRolled fills a container from a seed derived from the run seed,
// the prop position and its id. Later calls do nothing.
func (p *Prop) EnsureLootRolled(runSeed int32, x, y int, core item.CoreItems) {
	if p.rolled || !p.IsContainer() {
		return
	}
	if !p.hasLootSeed {
		p.lootSeed = rng.DeriveLootSeed(runSeed, x, y, p.Def.ID)
		p.hasLootSeed = true
	}
	s := rng.NewStream(p.lootSeed)
	if s.NextInt(0, 100) < 50 {
		p.contents.Add(core.DirtClod, 2+s.NextInt(0, 3))
	} else {
		p.contents.Add(core.OilBottle, 1)
	}
	p.contents.Add(core.WoodenArrow, 3+s.NextInt(0, 5))
	p.rolled = true
}

// TakeOneToInventory moves one unit of d from the container into inv.
// Nothing changes unless both sides succeed.
func (p *Prop) TakeOneToInventory(d *item.Definition, inv *item.Inventory) bool {
	if p.contents.Count(d) == 0 || !inv.Add(d, 1) {
		return false
	}
	if !p.contents.Remove(d, 1) {
		inv.Remove(d, 1)
		return false
	}
	return true
}

// StoreOneFromInventory moves one unit of d from inv into the container.
func (p *Prop) StoreOneFromInventory(d *item.Definition, inv *item.Inventory) bool {
	if !p.IsContainer() || !inv.Remove(d, 1) {
		return false
	}
	if !p.contents.Add(d, 1) {
		inv.Add(d, 1)
		return false
	}
	return true
}
