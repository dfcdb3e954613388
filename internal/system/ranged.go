package system

import (
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

// MinShotRange is the shortest range a directional shot travels.
const MinShotRange = 32

// ImpactKind is what stopped a projectile.
type ImpactKind uint8

const (
	ImpactNone ImpactKind = iota
	ImpactEnemy
	ImpactBlockingTile
	ImpactGround
)

func (k ImpactKind) String() string {
	switch k {
	case ImpactEnemy:
		return "enemy"
	case ImpactBlockingTile:
		return "blocking_tile"
	case ImpactGround:
		return "ground"
	}
	return "none"
}

// Projectile is an arrow or thrown item in flight. Its tags only change
// while the rules process the shot.
type Projectile struct {
	Pos    gamemap.Point
	Tags   gamemap.Tag
	ItemID string
}

// ProjectileParams tunes a shot.
type ProjectileParams struct {
	Range  int
	Pierce bool
}

// ProjectileResult is a simulated shot.
type ProjectileResult struct {
	Projectile  Projectile
	Trajectory  []gamemap.Point
	ImpactIndex int // -1 when the trajectory is empty
	Impact      ImpactKind
	Enemy       ecs.EntityID
}

// ImpactPoint returns the cell the projectile stopped on.
func (r *ProjectileResult) ImpactPoint() (gamemap.Point, bool) {
	if r == nil || r.ImpactIndex < 0 || r.ImpactIndex >= len(r.Trajectory) {
		return gamemap.Point{}, false
	}
	return r.Trajectory[r.ImpactIndex], true
}

// Travelled returns the cells up to and including the impact.
func (r *ProjectileResult) Travelled() []gamemap.Point {
	if r == nil || r.ImpactIndex < 0 {
		return nil
	}
	return r.Trajectory[:r.ImpactIndex+1]
}

// DirectionName names a unit direction for log messages.
func DirectionName(dx, dy int) string {
	names := [3][3]string{
		{"northwest", "north", "northeast"},
		{"west", "nowhere", "east"},
		{"southwest", "south", "southeast"},
	}
	return names[sign(dy)+1][sign(dx)+1]
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ShootDirectional fires an arrow from id in direction (dx, dy) as far as
// the map allows. A zero direction fires nothing and returns nil.
func ShootDirectional(env Env, id ecs.EntityID, dx, dy int) *ProjectileResult {
	from, ok := env.position(id)
	if !ok || (dx == 0 && dy == 0) {
		return nil
	}
	reach := max(MinShotRange, max(env.Map.Width, env.Map.Height))
	env.Log.Add(content.ShootDirectional, DirectionName(dx, dy))
	traj := env.Map.LinearTrajectory(from, dx, dy, reach)
	return simulate(env, from, traj, ProjectileParams{Range: reach}, env.Core.WoodenArrow.ID)
}

// ShootAt fires an arrow from id toward target along a digital line.
// Aiming at the shooter's own cell fires nothing and returns nil.
func ShootAt(env Env, id ecs.EntityID, target gamemap.Point, params ProjectileParams) *ProjectileResult {
	from, ok := env.position(id)
	if !ok || target == from {
		return nil
	}
	params.Range = max(params.Range, max(env.Map.Width, env.Map.Height))
	env.Log.Add(content.ShootGeneric)
	traj := env.Map.LineTrajectory(from, target, params.Range)
	return simulate(env, from, traj, params, env.Core.WoodenArrow.ID)
}

// SimulateProjectile runs a projectile along traj without logging the
// launch.
func SimulateProjectile(env Env, from gamemap.Point, traj []gamemap.Point, params ProjectileParams, itemID string) *ProjectileResult {
	return simulate(env, from, traj, params, itemID)
}

// simulate walks traj cell by cell. A living enemy stops the projectile
// before the tile is considered.
func simulate(env Env, from gamemap.Point, traj []gamemap.Point, params ProjectileParams, itemID string) *ProjectileResult {
	res := &ProjectileResult{
		Projectile:  Projectile{Pos: from, ItemID: itemID},
		Trajectory:  traj,
		ImpactIndex: -1,
		Impact:      ImpactNone,
		Enemy:       ecs.NilEntity,
	}
	if len(traj) == 0 {
		env.Log.Add(content.ShootBlockedImmediately)
		return res
	}
	for i, p := range traj {
		if enemy := LivingEnemyAt(env.World, p); enemy != ecs.NilEntity {
			res.ImpactIndex, res.Impact, res.Enemy = i, ImpactEnemy, enemy
			break
		}
		if !params.Pierce && env.Map.BlocksProjectiles(p.X, p.Y) {
			res.ImpactIndex, res.Impact = i, ImpactBlockingTile
			break
		}
	}
	if res.Impact == ImpactNone {
		res.ImpactIndex, res.Impact = len(traj)-1, ImpactGround
	}
	res.Projectile.Pos = traj[res.ImpactIndex]

	switch res.Impact {
	case ImpactEnemy:
		env.Log.Add(content.ProjectileHitEnemy, env.displayName(res.Enemy))
	case ImpactBlockingTile:
		p := res.Projectile.Pos
		env.Log.Add(content.ShootHitSurface, env.Log.Catalog().DescribeCell(env.Map, p.X, p.Y))
	default:
		env.Log.Add(content.ShootFellToGround)
	}
	return res
}
