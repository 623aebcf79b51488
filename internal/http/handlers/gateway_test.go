package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/gateway.php", Gateway)
	return r
}

func postGateway(t *testing.T, r *gin.Engine, body any, token string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/gateway.php", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGatewayUnknownAction(t *testing.T) {
	r := gatewayRouter()
	w, env := postGateway(t, r, map[string]any{"action": "fetchUnicorns"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "unknown action", env.Error)
}

func TestGatewayEmptyBody(t *testing.T) {
	r := gatewayRouter()

	req := httptest.NewRequest(http.MethodPost, "/gateway.php", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
}

func TestGatewayRejectsProtectedActionWithoutToken(t *testing.T) {
	r := gatewayRouter()
	w, env := postGateway(t, r, map[string]any{"action": "getCustomers"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestGatewayRejectsExpiredToken(t *testing.T) {
	r := gatewayRouter()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(1),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	w, env := postGateway(t, r, map[string]any{"action": "getCities"}, signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestGatewayRejectsMalformedJSON(t *testing.T) {
	r := gatewayRouter()

	req := httptest.NewRequest(http.MethodPost, "/gateway.php", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
