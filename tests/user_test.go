package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	clearTables()

	body := map[string]any{
		"email":        "sarah@advertomedia.hu",
		"password":     "supersecret1",
		"display_name": "Sarah Johnson",
	}

	t.Run("success", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/register", body, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			User struct {
				ID          string  `json:"id"`
				Email       string  `json:"email"`
				DisplayName *string `json:"display_name"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.User.ID)
		assert.Equal(t, "sarah@advertomedia.hu", resp.User.Email)
		require.NotNil(t, resp.User.DisplayName)
		assert.Equal(t, "Sarah Johnson", *resp.User.DisplayName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/register", body, "")
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("short password", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/register", map[string]any{
			"email":        "mike@advertomedia.hu",
			"password":     "short",
			"display_name": "Mike Chen",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func TestLogin(t *testing.T) {
	clearTables()
	createTestUser(t, "sarah@advertomedia.hu", "supersecret1")

	t.Run("success", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/login", map[string]any{
			"email":    "sarah@advertomedia.hu",
			"password": "supersecret1",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/login", map[string]any{
			"email":    "sarah@advertomedia.hu",
			"password": "wrongpassword",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/login", map[string]any{
			"email":    "nobody@advertomedia.hu",
			"password": "supersecret1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func TestMe(t *testing.T) {
	clearTables()
	u := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	token := generateToken(u.ID, u.Email)

	t.Run("with token", func(t *testing.T) {
		w := executeRequest("GET", "/v1/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			User struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, u.ID, resp.User.ID)
	})

	t.Run("without token", func(t *testing.T) {
		w := executeRequest("GET", "/v1/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
