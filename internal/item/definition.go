// Package item holds item definitions, the inventory and equipment model.
package item

import "slices"

// Stable ids of the items the rules refer to directly.
const (
	ShortSwordID  = "item_short_sword"
	BowID         = "item_bow_basic"
	WoodenArrowID = "item_arrow_wooden"
	OilBottleID   = "item_oil_bottle"
	DirtClodID    = "item_dirt_clod"
)

// RequiredIDs lists the item ids every content set must define.
var RequiredIDs = []string{ShortSwordID, BowID, WoodenArrowID, OilBottleID, DirtClodID}

// Definition is an immutable item template loaded from content.
// Definitions are compared by pointer: the registry owns one per id.
type Definition struct {
	ID          string
	Name        string
	Description string
	Category    string
	Tags        []string
	SpriteID    string
	Stackable   bool
	MaxStack    int
}

// NewDefinition normalises the stack limit: non-stackable items and
// non-positive limits stack to 1.
func NewDefinition(id, name, description, category string, tags []string, spriteID string, stackable bool, maxStack int) *Definition {
	if !stackable || maxStack <= 0 {
		maxStack = 1
	}
	return &Definition{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Tags:        slices.Clone(tags),
		SpriteID:    spriteID,
		Stackable:   stackable,
		MaxStack:    maxStack,
	}
}

// HasTag reports whether the definition carries tag.
func (d *Definition) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// CoreItems are the definitions the action and loot rules dispatch on.
type CoreItems struct {
	ShortSword  *Definition
	Bow         *Definition
	WoodenArrow *Definition
	OilBottle   *Definition
	DirtClod    *Definition
}
