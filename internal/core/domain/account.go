package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Permission names a capability checked before each mutating console action.
type Permission string

const (
	PermView             Permission = "view"
	PermEdit             Permission = "edit"
	PermDelete           Permission = "delete"
	PermManageUsers      Permission = "manage_users"
	PermManageCategories Permission = "manage_categories"
)

// rolePermissions is the single authorization source of truth. Every mutating
// operation must resolve through it before acting.
var rolePermissions = map[string][]Permission{
	RoleAdmin:  {PermView, PermEdit, PermDelete, PermManageUsers, PermManageCategories},
	RoleEditor: {PermView, PermEdit, PermDelete},
	RoleViewer: {PermView},
}

// RoleAllows reports whether the role grants the permission. Unknown or empty
// roles grant nothing.
func RoleAllows(role string, p Permission) bool {
	for _, granted := range rolePermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}

// Account models a console user. The password is stored and compared
// verbatim; credential hashing is a documented limitation of this console.
type Account struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitize returns a copy of the account with the password stripped, for
// display and for the denormalized copy held by a session.
func (a Account) Sanitize() Account {
	a.Password = ""
	return a
}

// Session is the record of the currently authenticated account. At most one
// session exists per profile; its User copy never carries the password.
type Session struct {
	User Account `json:"user"`
}
