package domain

// Role is the authorization role resolved for an account.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// UserStatus represents the account standing of a directory entry.
type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserSuspended UserStatus = "Suspended"
	UserInactive  UserStatus = "Inactive"
)

// User is a directory entry, distinct from the authentication principal.
// IDs follow USR-### for end users (ADM-### for seeded admins) and are not
// guaranteed globally unique once users have been deleted and re-added.
type User struct {
	ID            string     `json:"id" bson:"_id"`
	Name          string     `json:"name" bson:"name"`
	Email         string     `json:"email" bson:"email"`
	Role          Role       `json:"role" bson:"role"`
	MemberSince   string     `json:"memberSince" bson:"member_since"`
	TotalFlights  int        `json:"totalFlights" bson:"total_flights"`
	LoyaltyPoints int        `json:"loyaltyPoints" bson:"loyalty_points"`
	Status        UserStatus `json:"status" bson:"status"`
	LastLogin     string     `json:"lastLogin" bson:"last_login"`
}

// Principal is the authenticated identity after role resolution, as exposed
// to consumers of the auth layer.
type Principal struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	LastSignIn  string `json:"lastSignIn,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

// Credential is a stored sign-in credential for the built-in identity
// provider. The password is only ever held as a bcrypt hash.
type Credential struct {
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    int64
}
