package system

import (
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/item"
)

// Equip equips one d from id's bag.
func Equip(env Env, id ecs.EntityID, d *item.Definition) bool {
	bag := env.bag(id)
	if bag == nil || d == nil {
		return false
	}
	slot, ok := item.SlotFor(d)
	if !ok || !bag.Equip(d) {
		env.Log.Add(content.EquipFailed, d.Name)
		return false
	}
	env.Log.Add(content.EquipSucceeded, d.Name, slot.String())
	return true
}

// Unequip returns the item in slot to id's bag.
func Unequip(env Env, id ecs.EntityID, slot item.Slot) bool {
	bag := env.bag(id)
	if bag == nil {
		return false
	}
	cur := bag.Equipped(slot)
	if cur == nil {
		return false
	}
	if !bag.Unequip(slot) {
		env.Log.Add(content.UnequipFailed)
		return false
	}
	env.Log.Add(content.UnequipSucceeded, cur.Name)
	return true
}
