package core

// Entity is a dense index into every component store
// Ids are unique while live and reused after destruction
type Entity uint32

// NoEntity marks an empty slot or a failed lookup
const NoEntity Entity = ^Entity(0)
