package services

// Owned is implemented by entities that belong to a single user.
type Owned interface {
	OwnerID() uint
}

// canMutate is the single authorization predicate for mutations: only the
// owning user may update or delete an entity.
func canMutate(actorID uint, entity Owned) bool {
	return entity.OwnerID() == actorID
}
