package automaton

// mix spreads a state index over 64 bits so that summing mixed members gives an order independent set hash.
func mix(key uint) uint64 {
	return uint64(mix32(uint32(key)))
}

// Final avalanche step of MurmurHash3 (fmix32).
func mix32(k uint32) uint32 {
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}
