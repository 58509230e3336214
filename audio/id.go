package audio

import "github.com/cespare/xxhash/v2"

// SoundID is the integer identifier the engine issues for a named sound
type SoundID uint64

// IDFor hashes a sound name into its id; equal names give equal ids
func IDFor(name string) SoundID {
	return SoundID(xxhash.Sum64String(name))
}
