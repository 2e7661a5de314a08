package users_enums

type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "OWNER"
	WorkspaceRoleMember WorkspaceRole = "MEMBER"
	WorkspaceRoleViewer WorkspaceRole = "VIEWER"
)

// IsValid validates the WorkspaceRole
func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleOwner, WorkspaceRoleMember, WorkspaceRoleViewer:
		return true
	default:
		return false
	}
}

// CanMutate reports whether the role may change workspace content
// (boards, tasks, comments). Viewers are read-only.
func (r WorkspaceRole) CanMutate() bool {
	return r == WorkspaceRoleOwner || r == WorkspaceRoleMember
}
