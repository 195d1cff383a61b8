package constants

// Role values stored on users.user_role and embedded in JWT claims.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RolePrincipal  = "PRINCIPAL"
	RoleTeacher    = "TEACHER"
)

// Well-known bootstrap identity.
const (
	SuperAdminUsername = "superadmin"
	SuperAdminCode     = "SUPER_ADMIN_001"
)

var AllRoles = []string{
	RoleSuperAdmin,
	RolePrincipal,
	RoleTeacher,
}
