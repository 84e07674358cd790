// file: internals/constants/roles.go
package constants

import "fmt"

// Workspace roles, as issued by the identity service inside the JWT.
const (
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleLearner    = "learner"
)

// Role error message templates.
const (
	ErrOnlyEditorsCanAccess = "Only admins or instructors may access %s."
	ErrOnlyAdminsCanAccess  = "Only workspace admins may access %s."
)

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
