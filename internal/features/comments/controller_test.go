package comments_test

import (
	"fmt"
	"net/http"
	"testing"

	"taskboard-backend/internal/features/boards"
	"taskboard-backend/internal/features/comments"
	"taskboard-backend/internal/features/tasks"
	users_enums "taskboard-backend/internal/features/users/enums"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CommentFlow(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	viewer, viewerToken := test_utils.CreateTestUser(t, "Viewer")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")
	test_utils.AddWorkspaceMember(t, workspaceID, viewer.ID, users_enums.WorkspaceRoleViewer)

	board, err := boards.GetBoardService().CreateBoard(
		workspaceID, &boards.CreateBoardRequest{Name: "Todo"},
	)
	require.NoError(t, err)

	task, err := tasks.GetTaskService().CreateTask(
		workspaceID, board.ID, owner, &tasks.CreateTaskRequest{Title: "Discuss"},
	)
	require.NoError(t, err)

	commentsPath := fmt.Sprintf(
		"/api/v1/workspaces/%s/tasks/%s/comments", workspaceID, task.Task.ID,
	)

	// viewers may read but not write
	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, commentsPath,
		map[string]string{"text": "hi"}, viewerToken,
	)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, commentsPath,
		map[string]string{"text": "first"}, ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, commentsPath,
		map[string]string{"text": "second"}, ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// empty text is rejected
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, commentsPath,
		map[string]string{"text": ""}, ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, commentsPath, nil, viewerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed comments.ListCommentsResponse
	test_utils.UnmarshalResponse(t, recorder, &listed)
	require.Len(t, listed.Comments, 2)
	// chronological order, author joined in
	assert.Equal(t, "first", listed.Comments[0].Text)
	assert.Equal(t, "second", listed.Comments[1].Text)
	assert.Equal(t, "Owner", listed.Comments[0].AuthorName)
}

func Test_Comment_UnknownTaskIs404(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/%s/tasks/%s/comments", workspaceID, uuid.New()),
		map[string]string{"text": "hello"}, ownerToken,
	)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
