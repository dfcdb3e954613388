package rng

import "unicode/utf16"

// Role-specific salts ("LOOT_SEE" and "DROP_SEE" in ASCII).
const (
	LootSalt uint64 = 0x4C4F4F545F534545
	DropSalt uint64 = 0x44524F505F534545
)

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// DeriveLootSeed returns the container loot seed for the prop id at (x, y).
// The result depends only on its inputs and never touches a stream.
func DeriveLootSeed(runSeed int32, x, y int, propID string) uint64 {
	return deriveSeed(runSeed, x, y, propID, LootSalt)
}

// DeriveDropSeed returns the drop seed for the enemy id spawned at (x, y).
func DeriveDropSeed(runSeed int32, x, y int, enemyID string) uint64 {
	return deriveSeed(runSeed, x, y, enemyID, DropSalt)
}

func deriveSeed(runSeed int32, x, y int, id string, salt uint64) uint64 {
	seed := ExpandSeed(runSeed)
	seed ^= salt
	seed ^= packXY(x, y)
	seed ^= FNV1a64(id)
	return Mix64(seed)
}

func packXY(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

// FNV1a64 hashes id as UTF-16 code units, feeding the low byte and then the
// high byte of each unit.
func FNV1a64(id string) uint64 {
	hash := fnvOffset
	for _, c := range utf16.Encode([]rune(id)) {
		hash ^= uint64(byte(c))
		hash *= fnvPrime
		hash ^= uint64(byte(c >> 8))
		hash *= fnvPrime
	}
	return hash
}
