package rng

// WorldStreams holds the per-run streams. All three are seeded from one
// run seed through a seeder stream, in the order Gen, Loot, AI.
type WorldStreams struct {
	RunSeed int32
	Gen     *Stream
	Loot    *Stream
	AI      *Stream
}

// NewWorldStreams derives the generation, loot and AI streams for runSeed.
func NewWorldStreams(runSeed int32) *WorldStreams {
	seeder := NewStream(ExpandSeed(runSeed))
	return &WorldStreams{
		RunSeed: runSeed,
		Gen:     NewStream(seeder.NextUint64()),
		Loot:    NewStream(seeder.NextUint64()),
		AI:      NewStream(seeder.NextUint64()),
	}
}
