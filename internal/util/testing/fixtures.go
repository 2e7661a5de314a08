package test_utils

import (
	"fmt"
	"sync/atomic"
	"testing"

	users_dto "taskboard-backend/internal/features/users/dto"
	users_enums "taskboard-backend/internal/features/users/enums"
	users_models "taskboard-backend/internal/features/users/models"
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testUserCounter atomic.Int64

// CreateTestUser registers a user with a unique email and returns the
// stored user together with a valid access token.
func CreateTestUser(t *testing.T, name string) (*users_models.User, string) {
	t.Helper()

	userService := users_services.GetUserService()

	email := fmt.Sprintf("user%d@example.com", testUserCounter.Add(1))
	_, err := userService.Register(&users_dto.RegisterRequestDTO{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := userService.GetUserByEmail(email)
	require.NoError(t, err)
	require.NotNil(t, user)

	token, err := userService.GenerateAccessToken(user)
	require.NoError(t, err)

	return user, token
}

// CreateTestWorkspace creates a workspace owned by the given user.
func CreateTestWorkspace(
	t *testing.T,
	owner *users_models.User,
	name string,
) uuid.UUID {
	t.Helper()

	response, err := workspaces_services.GetWorkspaceService().CreateWorkspace(
		&workspaces_dto.CreateWorkspaceRequestDTO{Name: name},
		owner,
	)
	require.NoError(t, err)

	return response.ID
}

// AddWorkspaceMember adds a user to a workspace with the given role,
// bypassing the invite flow.
func AddWorkspaceMember(
	t *testing.T,
	workspaceID uuid.UUID,
	userID uuid.UUID,
	role users_enums.WorkspaceRole,
) {
	t.Helper()

	err := workspaces_services.GetMembershipService().AddMember(workspaceID, userID, role)
	require.NoError(t, err)
}
