package workspaces_controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	users_enums "taskboard-backend/internal/features/users/enums"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateWorkspace_CreatorBecomesOwner(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	_, token := test_utils.CreateTestUser(t, "Owner")

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, "/api/v1/workspaces",
		map[string]string{"name": "Acme"}, token,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created workspaces_dto.WorkspaceResponseDTO
	test_utils.UnmarshalResponse(t, recorder, &created)
	require.NotNil(t, created.UserRole)
	assert.Equal(t, users_enums.WorkspaceRoleOwner, *created.UserRole)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, "/api/v1/workspaces", nil, token,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed workspaces_dto.ListWorkspacesResponseDTO
	test_utils.UnmarshalResponse(t, recorder, &listed)
	require.Len(t, listed.Workspaces, 1)
	assert.Equal(t, "Acme", listed.Workspaces[0].Name)
}

func Test_WorkspaceGate_UnknownAndForeignWorkspaces(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	_, strangerToken := test_utils.CreateTestUser(t, "Stranger")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Private")

	// no token
	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/%s", workspaceID), nil, "",
	)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// unknown workspace id
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/%s", uuid.New()), nil, ownerToken,
	)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Workspace not found")

	// known workspace, non-member caller
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/%s", workspaceID), nil, strangerToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Access denied")

	// member caller
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/%s", workspaceID), nil, ownerToken,
	)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func Test_WorkspaceMutations_OwnerOnly(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	member, memberToken := test_utils.CreateTestUser(t, "Member")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Original")
	test_utils.AddWorkspaceMember(t, workspaceID, member.ID, users_enums.WorkspaceRoleMember)

	path := fmt.Sprintf("/api/v1/workspaces/%s", workspaceID)

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPut, path, map[string]string{"name": "Renamed"}, memberToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Insufficient permissions")

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPut, path, map[string]string{"name": "Renamed"}, ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Renamed")

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodDelete, path, nil, memberToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodDelete, path, nil, ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, path, nil, ownerToken,
	)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
