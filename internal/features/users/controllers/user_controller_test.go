package users_controllers_test

import (
	"net/http"
	"testing"

	users_dto "taskboard-backend/internal/features/users/dto"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AuthFlow_RegisterLoginAndProfile(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	registerBody := map[string]string{
		"name":     "Alice Example",
		"email":    "Alice@Example.com",
		"password": "password123",
	}

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, "/api/v1/auth/register", registerBody, "",
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var registered users_dto.RegisterResponseDTO
	test_utils.UnmarshalResponse(t, recorder, &registered)
	// emails are stored lowercased
	assert.Equal(t, "alice@example.com", registered.Email)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		}, "",
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var login users_dto.LoginResponseDTO
	test_utils.UnmarshalResponse(t, recorder, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, registered.ID, login.User.ID)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, "/api/v1/auth/me", nil, login.Token,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var profile users_dto.UserProfileDTO
	test_utils.UnmarshalResponse(t, recorder, &profile)
	assert.Equal(t, "Alice Example", profile.Name)
}

func Test_Register_DuplicateEmailRejected(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	body := map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "password123",
	}

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, "/api/v1/auth/register", body, "",
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, "/api/v1/auth/register", body, "",
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already exists")
}

func Test_Login_WrongPasswordRejected(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	user, _ := test_utils.CreateTestUser(t, "Carol")

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    user.Email,
			"password": "wrong-password",
		}, "",
	)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid credentials")
}

func Test_Profile_RequiresToken(t *testing.T) {
	test_utils.SetupTestDb(t)
	router := test_utils.NewTestRouter()

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodGet, "/api/v1/auth/me", nil, "",
	)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Not authorized, no token")

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodGet, "/api/v1/auth/me", nil, "not-a-jwt",
	)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Not authorized, token failed")
}
