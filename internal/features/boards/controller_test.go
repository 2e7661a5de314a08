package boards_test

import (
	"fmt"
	"net/http"
	"testing"

	"taskboard-backend/internal/features/boards"
	users_enums "taskboard-backend/internal/features/users/enums"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardsPath(workspaceID uuid.UUID) string {
	return fmt.Sprintf("/api/v1/workspaces/%s/boards", workspaceID)
}

func Test_CreateBoard_AppendsAtEndOfOrdering(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	for i, name := range []string{"Todo", "Doing", "Done"} {
		recorder := test_utils.MakeJSONRequest(
			t, router, http.MethodPost, boardsPath(workspaceID),
			map[string]string{"name": name}, ownerToken,
		)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var board boards.Board
		test_utils.UnmarshalResponse(t, recorder, &board)
		assert.Equal(t, i, board.Order)
	}

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodGet, boardsPath(workspaceID), nil, ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed boards.ListBoardsResponse
	test_utils.UnmarshalResponse(t, recorder, &listed)
	require.Len(t, listed.Boards, 3)
	assert.Equal(t, "Todo", listed.Boards[0].Name)
	assert.Equal(t, "Done", listed.Boards[2].Name)
}

func Test_CreateBoard_ViewerForbidden(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, _ := test_utils.CreateTestUser(t, "Owner")
	viewer, viewerToken := test_utils.CreateTestUser(t, "Viewer")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")
	test_utils.AddWorkspaceMember(t, workspaceID, viewer.ID, users_enums.WorkspaceRoleViewer)

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, boardsPath(workspaceID),
		map[string]string{"name": "Todo"}, viewerToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// viewers can still read
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, boardsPath(workspaceID), nil, viewerToken,
	)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func Test_ReorderBoards(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	boardService := boards.GetBoardService()

	first, err := boardService.CreateBoard(workspaceID, &boards.CreateBoardRequest{Name: "A"})
	require.NoError(t, err)
	second, err := boardService.CreateBoard(workspaceID, &boards.CreateBoardRequest{Name: "B"})
	require.NoError(t, err)
	third, err := boardService.CreateBoard(workspaceID, &boards.CreateBoardRequest{Name: "C"})
	require.NoError(t, err)

	reorderPath := boardsPath(workspaceID) + "/reorder"

	// an incomplete id list is rejected
	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPatch, reorderPath,
		map[string]any{"boardIds": []uuid.UUID{first.ID, second.ID}}, ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// an id from another workspace is rejected
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPatch, reorderPath,
		map[string]any{"boardIds": []uuid.UUID{first.ID, second.ID, uuid.New()}}, ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPatch, reorderPath,
		map[string]any{"boardIds": []uuid.UUID{third.ID, first.ID, second.ID}}, ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed boards.ListBoardsResponse
	test_utils.UnmarshalResponse(t, recorder, &listed)
	require.Len(t, listed.Boards, 3)
	assert.Equal(t, "C", listed.Boards[0].Name)
	assert.Equal(t, "A", listed.Boards[1].Name)
	assert.Equal(t, "B", listed.Boards[2].Name)

	// orders stay dense after reorder
	for i, board := range listed.Boards {
		assert.Equal(t, i, board.Order)
	}
}
