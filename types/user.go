package types

// UserRole represents the role assigned to a simulated user account.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is a record in the simulated API's in-memory store. Created on
// registration, looked up on login; lives for the process lifetime.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone,omitempty"`
	Role  UserRole `json:"role"`
}

// Session is the payload of a successful login: the authenticated user plus
// a minted session token.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
