package user

// User represents a user entity in the system.
type User struct {
	ID    string // ID is the store-minted identifier in hex form, immutable after creation
	Name  string // Name is the full name of the user
	Email string // Email is the email address of the user
}
