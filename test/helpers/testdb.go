package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"parttime_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing PasswordHash first when it still holds
// the raw password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Username)
}

// CreateAndLoginUser creates a user directly in the database and logs them
// in through the API, returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	if role == models.UserRoleEmployer {
		user.Phone = "13800138000"
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginEmployer creates an employer with a unique username.
func CreateAndLoginEmployer(t *testing.T, ts *TestServer) (string, *models.User) {
	suffix := time.Now().UnixNano()
	return CreateAndLoginUser(t, ts,
		fmt.Sprintf("employer_%d", suffix),
		fmt.Sprintf("employer_%d@test.com", suffix),
		"password123",
		models.UserRoleEmployer,
	)
}

// CreateAndLoginStudent creates a student with a unique username.
func CreateAndLoginStudent(t *testing.T, ts *TestServer) (string, *models.User) {
	suffix := time.Now().UnixNano()
	return CreateAndLoginUser(t, ts,
		fmt.Sprintf("student_%d", suffix),
		fmt.Sprintf("student_%d@test.com", suffix),
		"password123",
		models.UserRoleStudent,
	)
}
