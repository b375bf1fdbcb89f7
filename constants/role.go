package constants

// UserRole names the three role tiers a user can hold.
type UserRole string

const (
	RoleSuperuser UserRole = "superuser"
	RoleTenant    UserRole = "tenant"
	RoleWorker    UserRole = "worker"
)

// ParseUserRole validates a role string coming from the API.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleSuperuser, RoleTenant, RoleWorker:
		return UserRole(s), true
	}
	return "", false
}
