package content

// MessageID names one gameplay or HUD message template.
type MessageID int

const (
	TurnStart MessageID = iota
	TurnEnd

	RuleP01ArrowIgnited
	RuleE01TreeIgnited
	RuleE01TreeBurnedOut

	MoveOutOfBounds
	MoveBlockedByWall
	MoveSucceeded

	PickupNoItem
	PickupInventoryFull
	PickupDirtFromOilGround
	PickupDirtGeneric
	PickupGenericItem
	PickupGuideAtFeet

	ThrowMissingItem
	ThrowTargetIsSelf
	ThrowTooFar
	ThrowWoodenArrowFlavor
	ThrowOilBottleLost
	ThrowOilBottleCreatePuddle
	ThrowOilBottleNoSpread
	ThrowDirtClodFlavor
	ThrowGenericNoEffect
	ThrowModeBegin
	ThrowModeCanceled

	ShootDirectional
	ShootGeneric
	ShootBlockedImmediately
	ShootHitSurface
	ShootFellToGround
	ThrowProjectileDroppedAtFeet

	ContextPickupNotFromThere
	ContextExamineTile

	DropSucceeded
	DropNoSpace
	DropMissingItem

	ContainerOpened
	ContainerNotReachable
	ContainerTookItem
	ContainerStoredItem
	ContainerTransferFailed

	EquipSucceeded
	EquipFailed
	UnequipSucceeded
	UnequipFailed

	ProjectileHitEnemy
	BurningDamagePlayer
	BurningDamageEnemy

	MeleePlayerHitEnemyDamage
	MeleeEnemyDefeated
	MeleeEnemyHitPlayerDamage
	MeleePlayerDefeated
	MeleeHitGenericDamage

	UiTileDescGroundNormal
	UiTileDescGroundBurnt
	UiTileDescGroundOil
	UiTileDescGroundWater
	UiTileDescTreeNormal
	UiTileDescTreeBurning
	UiTileDescTreeBurnt
	UiTileDescWallStone
	UiTileDescWallMetal
	UiTileDescFire
	UiTileDescUnknown

	UiHudHpValue
	UiHudTimeTurn
	UiHudLocationDefault

	UiActorYou
	UiActorUnknown

	messageIDCount
)

var messageNames = [messageIDCount]string{
	"TurnStart", "TurnEnd",
	"RuleP01ArrowIgnited", "RuleE01TreeIgnited", "RuleE01TreeBurnedOut",
	"MoveOutOfBounds", "MoveBlockedByWall", "MoveSucceeded",
	"PickupNoItem", "PickupInventoryFull", "PickupDirtFromOilGround", "PickupDirtGeneric", "PickupGenericItem", "PickupGuideAtFeet",
	"ThrowMissingItem", "ThrowTargetIsSelf", "ThrowTooFar", "ThrowWoodenArrowFlavor",
	"ThrowOilBottleLost", "ThrowOilBottleCreatePuddle", "ThrowOilBottleNoSpread", "ThrowDirtClodFlavor",
	"ThrowGenericNoEffect", "ThrowModeBegin", "ThrowModeCanceled",
	"ShootDirectional", "ShootGeneric", "ShootBlockedImmediately", "ShootHitSurface", "ShootFellToGround",
	"ThrowProjectileDroppedAtFeet",
	"ContextPickupNotFromThere", "ContextExamineTile",
	"DropSucceeded", "DropNoSpace", "DropMissingItem",
	"ContainerOpened", "ContainerNotReachable", "ContainerTookItem", "ContainerStoredItem", "ContainerTransferFailed",
	"EquipSucceeded", "EquipFailed", "UnequipSucceeded", "UnequipFailed",
	"ProjectileHitEnemy", "BurningDamagePlayer", "BurningDamageEnemy",
	"MeleePlayerHitEnemyDamage", "MeleeEnemyDefeated", "MeleeEnemyHitPlayerDamage", "MeleePlayerDefeated", "MeleeHitGenericDamage",
	"UiTileDescGroundNormal", "UiTileDescGroundBurnt", "UiTileDescGroundOil", "UiTileDescGroundWater",
	"UiTileDescTreeNormal", "UiTileDescTreeBurning", "UiTileDescTreeBurnt",
	"UiTileDescWallStone", "UiTileDescWallMetal", "UiTileDescFire", "UiTileDescUnknown",
	"UiHudHpValue", "UiHudTimeTurn", "UiHudLocationDefault",
	"UiActorYou", "UiActorUnknown",
}

var messageByName = func() map[string]MessageID {
	m := make(map[string]MessageID, messageIDCount)
	for i, name := range messageNames {
		m[name] = MessageID(i)
	}
	return m
}()

func (id MessageID) String() string {
	if id >= 0 && id < messageIDCount {
		return messageNames[id]
	}
	return "MessageID(?)"
}

// ParseMessageID resolves a content-file id to a MessageID.
func ParseMessageID(name string) (MessageID, bool) {
	id, ok := messageByName[name]
	return id, ok
}

// AllMessageIDs lists every id in declaration order.
func AllMessageIDs() []MessageID {
	ids := make([]MessageID, messageIDCount)
	for i := range ids {
		ids[i] = MessageID(i)
	}
	return ids
}
