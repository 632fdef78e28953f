package user

// Type is the role of an account.
type Type string

const (
	TypeAdmin Type = "admin"
	TypeUser  Type = "user"
)

// DefaultAdminUsername is the account created when no users document exists.
const DefaultAdminUsername = "admin"

// User is one login account. Password holds a bcrypt hash, or the plaintext
// of an account written before hashing was introduced.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Type     Type   `json:"type"`
}

// Key returns the username.
func Key(u User) string { return u.Username }

// IsAdmin reports whether the account has the admin role.
func (u User) IsAdmin() bool { return u.Type == TypeAdmin }

// CanExport reports whether u may export reports. Only admins can.
func CanExport(u User) bool { return u.IsAdmin() }
