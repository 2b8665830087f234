package models

// User represents a staff account.
//
// Password holds whatever the configured credential verifier stores: the
// plaintext password by default, or a bcrypt hash when hashing is enabled.
type User struct {
	// ID is the unique identifier for the user (UUID for created users).
	ID string `json:"id"`

	// Name is the display name, also stamped on point events as teacherName.
	Name string `json:"name"`

	// Email is the login key. Stored case-folded and trimmed; uniqueness is
	// checked at creation time only.
	Email string `json:"email"`

	// Role decides which views the user may enter.
	Role Role `json:"role"`

	Password string `json:"password,omitempty"`
}
