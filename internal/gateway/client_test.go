package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func gatewayStub(t *testing.T, handler func(action string, body map[string]any, w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		action, _ := body["action"].(string)
		w.Header().Set("Content-Type", "application/json")
		handler(action, body, w)
	}))
}

func TestCallSuccessEnvelope(t *testing.T) {
	srv := gatewayStub(t, func(action string, body map[string]any, w http.ResponseWriter) {
		require.Equal(t, "getCustomers", action)
		require.Equal(t, "siam", body["search"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": 1, "name": "Siam Traders Co., Ltd."}},
			"total":   1,
		})
	})
	defer srv.Close()

	c := New(srv.URL)
	customers, total, err := c.GetCustomers(context.Background(), "siam", 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, customers, 1)
	require.Equal(t, "Siam Traders Co., Ltd.", customers[0].Name)
}

func TestCallFlattensBusinessError(t *testing.T) {
	srv := gatewayStub(t, func(action string, body map[string]any, w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "customer code already exists",
			"data":    map[string]any{"leak": true},
		})
	})
	defer srv.Close()

	env := New(srv.URL).Call(context.Background(), "createCustomer", nil)
	require.False(t, env.Success)
	require.Equal(t, "customer code already exists", env.Error)
	require.Nil(t, env.Data, "data must be dropped on failure")
}

func TestCallFlattensHTTPStatus(t *testing.T) {
	srv := gatewayStub(t, func(action string, body map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	env := New(srv.URL).Call(context.Background(), "getCities", nil)
	require.False(t, env.Success)
	require.Contains(t, env.Error, "HTTP 500")
}

func TestCallFlattensNetworkError(t *testing.T) {
	srv := gatewayStub(t, func(action string, body map[string]any, w http.ResponseWriter) {})
	srv.Close()

	env := New(srv.URL).Call(context.Background(), "getCities", nil)
	require.False(t, env.Success)
	require.Contains(t, env.Error, "network error")
}

func TestLoginStoresToken(t *testing.T) {
	srv := gatewayStub(t, func(action string, body map[string]any, w http.ResponseWriter) {
		require.Equal(t, "login", action)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "jwt-token",
				"user":  map[string]any{"id": 9, "username": "op1"},
			},
		})
	})
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Login(context.Background(), "op1", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", res.Token)
	require.Equal(t, int64(9), res.User.ID)
	require.Equal(t, "jwt-token", c.Token)
}

func TestSearchSupplierByCodeLengthGate(t *testing.T) {
	called := false
	srv := gatewayStub(t, func(action string, body map[string]any, w http.ResponseWriter) {
		called = true
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": 3, "code": "TG", "numeric_code": "217"}},
		})
	})
	defer srv.Close()

	c := New(srv.URL)
	_, ok, err := c.SearchSupplierByCode(context.Background(), "T")
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, called, "single-character code must not hit the gateway")

	sup, ok, err := c.SearchSupplierByCode(context.Background(), "TG")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "217", sup.NumericCode)
}
