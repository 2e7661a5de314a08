package workspaces_controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	users_enums "taskboard-backend/internal/features/users/enums"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invitesPath(workspaceID uuid.UUID) string {
	return fmt.Sprintf("/api/v1/workspaces/%s/invites", workspaceID)
}

func Test_InviteLifecycle_Accept(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	invitee, inviteeToken := test_utils.CreateTestUser(t, "Invitee")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": invitee.Email, "role": "MEMBER"}, ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var invite workspaces_models.Invite
	test_utils.UnmarshalResponse(t, recorder, &invite)
	assert.Equal(t, workspaces_models.InviteStatusPending, invite.Status)

	// invitee sees the pending invite
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, "/api/v1/invites", nil, inviteeToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var myInvites workspaces_dto.ListInvitesResponseDTO
	test_utils.UnmarshalResponse(t, recorder, &myInvites)
	require.Len(t, myInvites.Invites, 1)
	assert.Equal(t, "Team", myInvites.Invites[0].WorkspaceName)

	acceptPath := fmt.Sprintf("/api/v1/invites/%s/accept", invite.ID)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, acceptPath, nil, inviteeToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	// accepting again is a no-op
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, acceptPath, nil, inviteeToken,
	)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// the invitee is now a member
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/%s", workspaceID), nil, inviteeToken,
	)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func Test_Invite_EmailMismatchRejected(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	_, otherToken := test_utils.CreateTestUser(t, "Other")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": "someone-else@example.com", "role": "MEMBER"}, ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var invite workspaces_models.Invite
	test_utils.UnmarshalResponse(t, recorder, &invite)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/invites/%s/accept", invite.ID), nil, otherToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "different email")
}

func Test_Invite_DeclineIsTerminal(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	invitee, inviteeToken := test_utils.CreateTestUser(t, "Invitee")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": invitee.Email, "role": "VIEWER"}, ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var invite workspaces_models.Invite
	test_utils.UnmarshalResponse(t, recorder, &invite)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/invites/%s/decline", invite.ID), nil, inviteeToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	// a declined invite cannot be accepted afterwards
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/invites/%s/accept", invite.ID), nil, inviteeToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// and the invitee never became a member
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/%s", workspaceID), nil, inviteeToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func Test_Invite_ValidationRules(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	member, memberToken := test_utils.CreateTestUser(t, "Member")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")
	test_utils.AddWorkspaceMember(t, workspaceID, member.ID, users_enums.WorkspaceRoleMember)

	// invites cannot grant OWNER
	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": "new@example.com", "role": "OWNER"}, ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// existing members cannot be invited
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": member.Email, "role": "MEMBER"}, ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already a member")

	// at most one pending invite per email
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": "new@example.com", "role": "MEMBER"}, ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": "new@example.com", "role": "MEMBER"}, ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already pending")

	// only owners may invite
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, invitesPath(workspaceID),
		map[string]string{"email": "another@example.com", "role": "MEMBER"}, memberToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
