// Package turn drives the fixed five-phase turn cycle.
package turn

// Phase is one step of a turn. Phases always run in declaration order.
type Phase uint8

const (
	PhasePlayer Phase = iota
	PhaseProjectile
	PhaseEnvironment
	PhaseEnemy
	PhaseStatusEffect
	phaseCount
)

// Phases lists every phase in execution order.
var Phases = []Phase{PhasePlayer, PhaseProjectile, PhaseEnvironment, PhaseEnemy, PhaseStatusEffect}

func (p Phase) String() string {
	switch p {
	case PhasePlayer:
		return "player"
	case PhaseProjectile:
		return "projectile"
	case PhaseEnvironment:
		return "environment"
	case PhaseEnemy:
		return "enemy"
	case PhaseStatusEffect:
		return "status_effect"
	}
	return "unknown"
}

// TimeUnitsPerTurn is the elapsed time one Advance adds.
const TimeUnitsPerTurn = 100

// Handler runs during one phase.
type Handler func()

// Scheduler owns the turn counter and the per-phase handlers.
type Scheduler struct {
	turn     int
	handlers [phaseCount][]Handler
}

// NewScheduler returns a scheduler at turn 0.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Register appends h to phase. Handlers of a phase run in registration order.
func (s *Scheduler) Register(phase Phase, h Handler) {
	if phase >= phaseCount || h == nil {
		return
	}
	s.handlers[phase] = append(s.handlers[phase], h)
}

// Advance runs every phase once, then moves the clock one turn forward.
func (s *Scheduler) Advance() {
	for _, p := range Phases {
		for _, h := range s.handlers[p] {
			h()
		}
	}
	s.turn++
}

// CurrentTurn is the number of completed turns.
func (s *Scheduler) CurrentTurn() int { return s.turn }

// TotalTimeUnits is the elapsed simulated time.
func (s *Scheduler) TotalTimeUnits() int { return s.turn * TimeUnitsPerTurn }
