package auth

import "github.com/mmynk/housepoints/internal/models"

// Policy is a named set of roles admitted to a view.
type Policy struct {
	Name  string
	roles map[models.Role]struct{}
}

// NewPolicy builds a policy admitting exactly the given roles.
func NewPolicy(name string, roles ...models.Role) Policy {
	set := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return Policy{Name: name, roles: set}
}

// Allows reports whether role is a member of the policy.
func (p Policy) Allows(role models.Role) bool {
	_, ok := p.roles[role]
	return ok
}

// Roles returns the members in enumeration order.
func (p Policy) Roles() []models.Role {
	var out []models.Role
	for _, r := range models.AllRoles {
		if p.Allows(r) {
			out = append(out, r)
		}
	}
	return out
}

var (
	// StaffGroup admits every staff role. It gates scoring and audit.
	StaffGroup = NewPolicy("staff",
		models.RoleAdmin,
		models.RoleCoordinator,
		models.RoleCoordinationTeam,
		models.RoleTeacher,
		models.RoleInspector,
	)

	// ManagementGroup admits administrators and coordinators. It gates settings.
	ManagementGroup = NewPolicy("management",
		models.RoleAdmin,
		models.RoleCoordinator,
	)
)

// Authorize reports whether user's role is in the policy.
func Authorize(user models.User, p Policy) bool {
	return p.Allows(user.Role)
}
