package core

// Entity is a unique identifier for a simulation entity
// Zero is reserved as the invalid entity
type Entity uint64

// NoEntity is returned by lookups that found nothing
const NoEntity Entity = 0
