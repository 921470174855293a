package layout

// HashNumber derives an id from a numeric offset and a seed
// Every step is a bijection on uint32, so distinct offsets under one seed never collide
func HashNumber(offset, seed uint32) ElementID {
	hash := seed
	hash += offset + 48
	hash += hash << 10
	hash ^= hash >> 6

	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return ElementID{ID: hash + 1, Offset: offset, BaseID: seed}
}

// HashString derives an id from a string key, an offset and a seed
func HashString(key string, offset, seed uint32) ElementID {
	base := seed
	for i := 0; i < len(key); i++ {
		base += uint32(key[i])
		base += base << 10
		base ^= base >> 6
	}
	hash := base
	hash += offset
	hash += hash << 10
	hash ^= hash >> 6

	hash += hash << 3
	base += base << 3
	hash ^= hash >> 11
	base ^= base >> 11
	hash += hash << 15
	base += base << 15
	return ElementID{ID: hash + 1, Offset: offset, BaseID: base + 1}
}

// ID hashes a user-facing element name
func ID(name string) ElementID {
	return HashString(name, 0, 0)
}

// IDI hashes a user-facing element name with an index
func IDI(name string, index uint32) ElementID {
	return HashString(name, index, 0)
}
