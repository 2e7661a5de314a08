package test_utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	"taskboard-backend/internal/features/comments"
	"taskboard-backend/internal/features/tasks"
	users_models "taskboard-backend/internal/features/users/models"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	"taskboard-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var testDbCounter atomic.Int64

// SetupTestDb points the storage layer at a fresh in-memory SQLite
// database with the full schema migrated. Each call gets its own
// database, so tests stay independent.
func SetupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	setTestEnvDefaults()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf(
		"file:testdb_%d?mode=memory&cache=shared",
		testDbCounter.Add(1),
	)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)

	// shared-cache in-memory databases disappear when the last
	// connection closes, so keep the pool at a single connection
	sqlDb, err := database.DB()
	require.NoError(t, err)
	sqlDb.SetMaxOpenConns(1)

	err = database.AutoMigrate(
		&users_models.User{},
		&workspaces_models.Workspace{},
		&workspaces_models.WorkspaceMembership{},
		&workspaces_models.Invite{},
		&boards.Board{},
		&tasks.Task{},
		&tasks.TaskAssignee{},
		&comments.Comment{},
		&activities.ActivityEvent{},
	)
	require.NoError(t, err)

	storage.SetDb(database)

	return database
}

func setTestEnvDefaults() {
	defaults := map[string]string{
		"DATABASE_DSN": "file::memory:?cache=shared",
		"ENV_MODE":     "development",
		"JWT_SECRET":   "test-jwt-secret",
	}

	for key, value := range defaults {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// MakeJSONRequest performs a request against the router and returns
// the recorder. A non-empty token is sent as a bearer token.
func MakeJSONRequest(
	t *testing.T,
	router http.Handler,
	method string,
	path string,
	body any,
	token string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

// UnmarshalResponse decodes the recorder's JSON body into target.
func UnmarshalResponse(
	t *testing.T,
	recorder *httptest.ResponseRecorder,
	target any,
) {
	t.Helper()

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
