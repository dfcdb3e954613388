package system

import (
	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
)

// MeleeResult holds the outcome of one melee attack.
type MeleeResult struct {
	OK     bool
	Damage int
	Killed bool
}

// Melee resolves one attack between orthogonal neighbours.
// Damage is max(1, attack - defense).
func Melee(env Env, attackerID, defenderID ecs.EntityID) MeleeResult {
	apos, ok1 := env.position(attackerID)
	dpos, ok2 := env.position(defenderID)
	if !ok1 || !ok2 || apos.Manhattan(dpos) != 1 {
		return MeleeResult{}
	}
	if IsDead(env.World, attackerID) || IsDead(env.World, defenderID) {
		return MeleeResult{}
	}
	atkComp := env.World.Get(attackerID, component.CCombat)
	defComp := env.World.Get(defenderID, component.CCombat)
	if atkComp == nil || defComp == nil || !env.World.Has(defenderID, component.CHealth) {
		return MeleeResult{}
	}

	dmg := component.MeleeDamage(atkComp.(component.Combat).Attack, defComp.(component.Combat).Defense)
	_, killed := env.damage(defenderID, dmg)
	res := MeleeResult{OK: true, Damage: dmg, Killed: killed}

	switch {
	case env.isPlayer(attackerID) && env.isEnemy(defenderID):
		name := env.displayName(defenderID)
		env.Log.Add(content.MeleePlayerHitEnemyDamage, name, dmg)
		if killed {
			env.Log.Add(content.MeleeEnemyDefeated, name)
		}
	case env.isEnemy(attackerID) && env.isPlayer(defenderID):
		env.Log.Add(content.MeleeEnemyHitPlayerDamage, env.displayName(attackerID), dmg)
		if killed {
			env.Log.Add(content.MeleePlayerDefeated)
		}
	default:
		env.Log.Add(content.MeleeHitGenericDamage, env.displayName(attackerID), env.displayName(defenderID), dmg)
	}

	if killed {
		logger.Log.WithFields(logrus.Fields{
			"component": "system",
			"attacker":  attackerID,
			"defender":  defenderID,
			"turn":      env.Turn,
		}).Debug("melee kill")
	}
	return res
}
