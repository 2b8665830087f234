package models

// Role is a staff designation used for access-control decisions.
type Role string

const (
	RoleAdmin            Role = "Administrador"
	RoleCoordinator      Role = "Coordenador"
	RoleCoordinationTeam Role = "Equipe de Coordenação"
	RoleTeacher          Role = "Professor"
	RoleInspector        Role = "Inspetor"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{
	RoleAdmin,
	RoleCoordinator,
	RoleCoordinationTeam,
	RoleTeacher,
	RoleInspector,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleCoordinationTeam, RoleTeacher, RoleInspector:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
