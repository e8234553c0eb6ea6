package sim

import (
	"hash/fnv"
	"math/rand"
)

// PartitionedRNG provides deterministic, isolated RNG streams per subsystem.
//
// Derivation formula: subsystemSeed = masterSeed XOR fnv1a64(subsystemName).
// Hash-based derivation keeps streams order-independent: a machine's draws
// do not depend on how many other machines exist or when they first sample.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine;
// parallel evaluations each build their own PartitionedRNG.
type PartitionedRNG struct {
	masterSeed int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.masterSeed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// ForMachine returns the RNG stream owned by the named machine.
// Convenience for ForSubsystem("machine_<name>").
func (p *PartitionedRNG) ForMachine(name string) *rand.Rand {
	return p.ForSubsystem("machine_" + name)
}

// Seed returns the master seed used to create this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.masterSeed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
