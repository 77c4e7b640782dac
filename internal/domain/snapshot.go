package domain

// Snapshot captures the state of exactly one entity immediately before a
// mutating operation. Undo hands the snapshot back to the controller, which
// re-persists it whole; partial restores do not exist.
type Snapshot struct {
	Entity EntityType
	Action ActionType
	// Exactly one of Contact/User is set, matching Entity.
	Contact *Contact
	User    *User
}
