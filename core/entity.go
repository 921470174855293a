package core

// Entity is an opaque identity owned by engine.World
// Zero is never allocated and doubles as "no entity"
type Entity uint64

// NoEntity is the zero entity
const NoEntity Entity = 0
