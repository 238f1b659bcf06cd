package entity

// Session groups the files uploaded by one user. Name is what the user typed
// and is display data only; ID is the identity.
type Session struct {
	ID         string
	Name       string
	CreatedAt  int64
	LastSeenAt int64
}
