package domain

import (
	"strings"
	"time"

	"github.com/musemart/musemart-backend/pkg/enums"
)

// User is a storefront account. The mock catalog keeps credentials in
// plain text; the comparison contract is exact, case-sensitive match.
type User struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       *string            `json:"phone,omitempty"`
	Password    string             `json:"password,omitempty"`
	Role        enums.UserRole     `json:"role"`
	Status      enums.UserStatus   `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	LastLogin   *time.Time         `json:"lastLogin,omitempty"`
	Permissions []enums.Permission `json:"permissions,omitempty"`
	Department  *string            `json:"department,omitempty"`
	Position    *string            `json:"position,omitempty"`
}

// EmailMatches compares emails case-insensitively.
func (u User) EmailMatches(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// HasPermission reports set membership over the user's effective
// permission set: the explicit grant when present, the role's fixed set
// otherwise.
func (u User) HasPermission(p enums.Permission) bool {
	perms := u.Permissions
	if len(perms) == 0 {
		perms = enums.RolePermissions[u.Role]
	}
	for _, candidate := range perms {
		if candidate == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand outside the store.
func (u User) Clone() User {
	out := u
	out.Phone = copyStringPtr(u.Phone)
	out.Department = copyStringPtr(u.Department)
	out.Position = copyStringPtr(u.Position)
	out.LastLogin = copyTimePtr(u.LastLogin)
	if u.Permissions != nil {
		out.Permissions = make([]enums.Permission, len(u.Permissions))
		copy(out.Permissions, u.Permissions)
	}
	return out
}

func copyStringPtr(src *string) *string {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}

func copyTimePtr(src *time.Time) *time.Time {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
