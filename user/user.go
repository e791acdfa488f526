package user

const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // CLIENT, ADMIN
}

// AuthUser is what the auth middleware puts in the request context.
type AuthUser struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Admin bool   `json:"admin"`
}
