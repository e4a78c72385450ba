package enums

import "fmt"

// Permission is a fine-grained back-office capability tag.
type Permission string

const (
	PermissionUsersRead     Permission = "users:read"
	PermissionUsersWrite    Permission = "users:write"
	PermissionUsersDelete   Permission = "users:delete"
	PermissionProductsRead  Permission = "products:read"
	PermissionProductsWrite Permission = "products:write"
	PermissionProductsDel   Permission = "products:delete"
	PermissionOrdersRead    Permission = "orders:read"
	PermissionOrdersWrite   Permission = "orders:write"
	PermissionOrdersDelete  Permission = "orders:delete"
	PermissionReviewsRead   Permission = "reviews:read"
	PermissionReviewsWrite  Permission = "reviews:write"
	PermissionReviewsDelete Permission = "reviews:delete"
	PermissionAnalyticsRead Permission = "analytics:read"
	PermissionSystemConfig  Permission = "system:config"
)

var validPermissions = []Permission{
	PermissionUsersRead,
	PermissionUsersWrite,
	PermissionUsersDelete,
	PermissionProductsRead,
	PermissionProductsWrite,
	PermissionProductsDel,
	PermissionOrdersRead,
	PermissionOrdersWrite,
	PermissionOrdersDelete,
	PermissionReviewsRead,
	PermissionReviewsWrite,
	PermissionReviewsDelete,
	PermissionAnalyticsRead,
	PermissionSystemConfig,
}

// String implements fmt.Stringer.
func (p Permission) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Permission.
func (p Permission) IsValid() bool {
	for _, candidate := range validPermissions {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePermission converts raw input into a Permission.
func ParsePermission(value string) (Permission, error) {
	for _, candidate := range validPermissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid permission %q", value)
}

// RolePermissions maps each role to its fixed back-office permission set.
// Customers administrate nothing.
var RolePermissions = map[UserRole][]Permission{
	UserRoleAdmin: {
		PermissionUsersRead, PermissionUsersWrite, PermissionUsersDelete,
		PermissionProductsRead, PermissionProductsWrite, PermissionProductsDel,
		PermissionOrdersRead, PermissionOrdersWrite, PermissionOrdersDelete,
		PermissionReviewsRead, PermissionReviewsWrite, PermissionReviewsDelete,
		PermissionAnalyticsRead, PermissionSystemConfig,
	},
	UserRoleManager: {
		PermissionUsersRead,
		PermissionProductsRead, PermissionProductsWrite,
		PermissionOrdersRead, PermissionOrdersWrite,
		PermissionReviewsRead, PermissionReviewsWrite,
		PermissionAnalyticsRead,
	},
	UserRoleCustomer: {},
}

// DefaultCustomerPermissions is what self-service registration grants:
// enough to see one's own orders and reviews.
var DefaultCustomerPermissions = []Permission{
	PermissionOrdersRead,
	PermissionReviewsRead,
}

// PermissionsForRole returns a copy of the role's fixed permission set.
func PermissionsForRole(role UserRole) []Permission {
	perms, ok := RolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
