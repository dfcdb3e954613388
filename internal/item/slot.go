package item

// Slot is one of the six equipment slots.
type Slot uint8

const (
	SlotHead Slot = iota
	SlotBody
	SlotMainHand
	SlotOffHand
	SlotBack
	SlotFeet
	slotCount
)

// AllSlots lists every slot in declaration order.
var AllSlots = []Slot{SlotHead, SlotBody, SlotMainHand, SlotOffHand, SlotBack, SlotFeet}

func (s Slot) String() string {
	switch s {
	case SlotHead:
		return "head"
	case SlotBody:
		return "body"
	case SlotMainHand:
		return "main_hand"
	case SlotOffHand:
		return "off_hand"
	case SlotBack:
		return "back"
	case SlotFeet:
		return "feet"
	}
	return "unknown"
}

// slotRules is checked top to bottom; the first rule with a matching tag wins.
var slotRules = []struct {
	tags []string
	slot Slot
}{
	{[]string{"weapon"}, SlotMainHand},
	{[]string{"ammo"}, SlotBack},
	{[]string{"armor", "body_armor"}, SlotBody},
	{[]string{"helmet", "head_armor"}, SlotHead},
	{[]string{"boots", "feet_armor"}, SlotFeet},
	{[]string{"shield", "offhand"}, SlotOffHand},
}

// SlotFor resolves the slot an item equips into. ok is false for items
// that cannot be equipped.
func SlotFor(d *Definition) (slot Slot, ok bool) {
	if d == nil {
		return 0, false
	}
	for _, rule := range slotRules {
		for _, tag := range rule.tags {
			if d.HasTag(tag) {
				return rule.slot, true
			}
		}
	}
	return 0, false
}
