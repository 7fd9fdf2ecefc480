package interaction

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postInteract(t *testing.T, ctrl *Controller, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ctrl.Handle(rec, req)
	return rec
}

func TestControllerRate(t *testing.T) {
	ctrl := NewController(NewService(newFakeInteractionRepo()))

	rec := postInteract(t, ctrl, `{"action":"rate","id":"r1","rating":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	// la key del promedio lleva espacio: contrato congelado
	assert.JSONEq(t,
		`{"Message":"Recipe 'r1' rated successfully.","Average Rating":4}`,
		rec.Body.String())

	rec = postInteract(t, ctrl, `{"action":"rate","id":"r1","rating":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"Message":"Recipe 'r1' rated successfully.","Average Rating":4.5}`,
		rec.Body.String())
}

func TestControllerRateValidation(t *testing.T) {
	ctrl := NewController(NewService(newFakeInteractionRepo()))

	rec := postInteract(t, ctrl, `{"action":"rate","rating":4}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"Error":"Recipe ID is required."}`, rec.Body.String())

	for _, body := range []string{
		`{"action":"rate","id":"r1","rating":0}`,
		`{"action":"rate","id":"r1","rating":6}`,
		`{"action":"rate","id":"r1"}`,
	} {
		rec = postInteract(t, ctrl, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.JSONEq(t, `{"Error":"Rating must be an integer between 1 and 5."}`, rec.Body.String())
	}
}

func TestControllerTag(t *testing.T) {
	ctrl := NewController(NewService(newFakeInteractionRepo()))

	rec := postInteract(t, ctrl, `{"action":"tag","id":"r1","tag":"vegan"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"Tag 'vegan' added to recipe 'r1'."}`, rec.Body.String())

	rec = postInteract(t, ctrl, `{"action":"tag","id":"r1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"Error":"Recipe ID and tag are required."}`, rec.Body.String())
}

func TestControllerUnknownAction(t *testing.T) {
	ctrl := NewController(NewService(newFakeInteractionRepo()))

	rec := postInteract(t, ctrl, `{"action":"like","id":"r1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"Error":"Invalid action specified."}`, rec.Body.String())
}
