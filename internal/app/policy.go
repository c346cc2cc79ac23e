package app

// CanMutate reports whether the requester may mutate a resource owned by
// ownerID. Ownership is flat: exactly one owner per resource, no roles or
// admin override. Extensions (moderators, shared ownership) would slot in
// here as a further predicate without touching the call sites.
func CanMutate(ownerID, requesterID uint) bool {
	return requesterID != 0 && ownerID == requesterID
}
