package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postAuth(t *testing.T, ctrl *Controller, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ctrl.Handle(rec, req)
	return rec
}

func TestControllerRegister(t *testing.T) {
	ctrl := NewController(NewService(newFakeUserRepo()))

	rec := postAuth(t, ctrl, `{"action":"register","username":"alice","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"User 'alice' registered successfully."}`, rec.Body.String())

	// mismo username de nuevo: conflicto con el string congelado
	rec = postAuth(t, ctrl, `{"action":"register","username":"alice","password":"otra"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"Error":"User already exists."}`, rec.Body.String())
}

func TestControllerLogin(t *testing.T) {
	ctrl := NewController(NewService(newFakeUserRepo()))
	postAuth(t, ctrl, `{"action":"register","username":"alice","password":"s3cret"}`)

	rec := postAuth(t, ctrl, `{"action":"login","username":"alice","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"User 'alice' logged in successfully."}`, rec.Body.String())

	rec = postAuth(t, ctrl, `{"action":"login","username":"alice","password":"mal"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"Error":"Invalid credentials."}`, rec.Body.String())
}

func TestControllerInvalidAction(t *testing.T) {
	ctrl := NewController(NewService(newFakeUserRepo()))

	rec := postAuth(t, ctrl, `{"action":"logout","username":"alice","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"Error":"Invalid action specified."}`, rec.Body.String())
}

func TestControllerMalformedBody(t *testing.T) {
	ctrl := NewController(NewService(newFakeUserRepo()))

	rec := postAuth(t, ctrl, `{"action":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"Error":"Invalid request format."}`, rec.Body.String())
}
