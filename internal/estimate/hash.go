package estimate

import (
	"encoding/binary"
	"hash/fnv"
)

// Draw offsets keep the per-field pseudo-random streams independent for a
// given planet identifier.
const (
	offsetEccentricity uint64 = 1
	offsetArgPeriapsis uint64 = 2
	offsetMeanAnomaly  uint64 = 3
	offsetInclination  uint64 = 4
)

// unitHash maps (identifier, offset) to a value in [0, 1). It is a pure
// FNV-1a hash: no wall clock, no global state, identical on every platform
// and run. Estimation reproducibility depends on this; it is not a
// cryptographic generator and does not need to be.
func unitHash(id string, offset uint64) float64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], offset)
	h.Write(buf[:])
	return float64(h.Sum64()>>11) / float64(1<<53)
}

// rangeHash scales unitHash into [lo, hi).
func rangeHash(id string, offset uint64, lo, hi float64) float64 {
	return lo + unitHash(id, offset)*(hi-lo)
}
