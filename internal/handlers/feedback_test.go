package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/logitrack/internal/models"
)

func TestFeedbackRatingBounds(t *testing.T) {
	env := newTestEnv(t)

	for _, rating := range []int{0, 6, -1} {
		resp := env.request(t, http.MethodPost, "/api/feedback", "", map[string]interface{}{
			"rating": rating, "comment": "out of range",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %d", rating)
	}

	for _, rating := range []int{1, 5} {
		resp := env.request(t, http.MethodPost, "/api/feedback", "", map[string]interface{}{
			"rating": rating, "comment": "in range",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode, "rating %d", rating)
	}
}

func TestFeedbackGuestAndAuthenticatedAttribution(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.newAccount(t, "Alice", "alice@example.com", models.RoleUser)

	// Guests submit anonymously.
	var anonymous models.Feedback
	resp := env.request(t, http.MethodPost, "/api/feedback", "", map[string]interface{}{
		"rating": 4, "comment": "quick delivery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &anonymous)
	assert.Nil(t, anonymous.CustomerID)

	// A signed-in caller is attributed automatically.
	var attributed models.Feedback
	resp = env.request(t, http.MethodPost, "/api/feedback", token, map[string]interface{}{
		"rating": 5, "comment": "flawless",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &attributed)
	require.NotNil(t, attributed.CustomerID)
	assert.Equal(t, user.ID, *attributed.CustomerID)
}

func TestFeedbackListIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.newAccount(t, "Alice", "alice@example.com", models.RoleUser)
	_, adminToken := env.newAccount(t, "Root", "root@example.com", models.RoleAdmin)

	resp := env.request(t, http.MethodPost, "/api/feedback", "", map[string]interface{}{
		"rating": 3, "comment": "fine",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/feedback", userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var entries []models.Feedback
	resp = env.request(t, http.MethodGet, "/api/feedback", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &entries)
	assert.Len(t, entries, 1)
}
