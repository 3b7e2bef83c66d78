// Package models defines the records persisted by the catalog: user
// accounts and scale products. Both collections are keyed by name, so the
// key never appears inside the record itself.
package models

// Role is the flat authorization attribute of a user account. There is no
// hierarchy: administrator unlocks the user-management screens, user does
// not.
type Role string

const (
	RoleUser          Role = "user"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdministrator
}

// User is one account record, keyed by a unique case-sensitive username.
// PasswordHash is the unsalted SHA-256 hex digest of the password; the
// digest format is pinned so credentials stored by earlier deployments
// keep working.
type User struct {
	PasswordHash string `json:"password_hash" validate:"required,len=64,hexadecimal"`
	Role         Role   `json:"role"          validate:"required,oneof=user administrator"`
}

// UserUpdate is a partial update of a user record. Nil fields are left
// untouched.
type UserUpdate struct {
	PasswordHash *string
	Role         *Role
}

// Apply merges the non-nil fields of upd into u.
func (upd UserUpdate) Apply(u *User) {
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
}
