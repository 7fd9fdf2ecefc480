package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/recetario/internal/domain"
)

func post(t *testing.T, handle http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handle(rec, req)
	return rec
}

func seedService(t *testing.T) *Service {
	t.Helper()
	svc := newTestService(&fakeRecipeRepo{})
	manage := NewManageController(svc)

	rec := post(t, manage.Handle,
		`{"action":"create","id":"r1","name":"Chocolate Brownies","ingredients":["chocolate","flour"],"instructions":"Mix and bake.","cooking_time":"45 min"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	return svc
}

func TestManageCreateAndEdit(t *testing.T) {
	svc := newTestService(&fakeRecipeRepo{})
	manage := NewManageController(svc)

	rec := post(t, manage.Handle,
		`{"action":"create","id":"r1","name":"Brownies","ingredients":["chocolate"],"instructions":"Bake.","cooking_time":"45 min"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"Recipe 'r1' created successfully."}`, rec.Body.String())

	rec = post(t, manage.Handle,
		`{"action":"create","id":"r1","name":"Otra","ingredients":["x"],"instructions":"i","cooking_time":"1 min"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"Error":"Recipe ID already exists."}`, rec.Body.String())

	rec = post(t, manage.Handle,
		`{"action":"edit","id":"r1","name":"Brownies","ingredients":["chocolate"],"instructions":"Bake longer.","cooking_time":"50 min"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"Recipe 'r1' updated successfully."}`, rec.Body.String())

	rec = post(t, manage.Handle,
		`{"action":"edit","id":"ghost","name":"n","ingredients":["x"],"instructions":"i","cooking_time":"1 min"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Error":"Recipe not found."}`, rec.Body.String())
}

func TestManageInvalidData(t *testing.T) {
	manage := NewManageController(newTestService(&fakeRecipeRepo{}))

	rec := post(t, manage.Handle, `{"action":"create","id":"r1","name":"","ingredients":[],"instructions":"","cooking_time":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"Error":"Invalid data. Name, ingredients, instructions, and cooking time are required."}`,
		rec.Body.String())
}

func TestManageInvalidAction(t *testing.T) {
	manage := NewManageController(newTestService(&fakeRecipeRepo{}))

	rec := post(t, manage.Handle, `{"action":"delete","id":"r1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"Error":"Invalid action specified."}`, rec.Body.String())
}

func TestReadLookup(t *testing.T) {
	svc := seedService(t)
	read := NewReadController(svc)

	rec := post(t, read.Handle, `{"recipeID":"r1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var r domain.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "Chocolate Brownies", r.Name)

	rec = post(t, read.Handle, `{"recipeID":"ghost"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Error":"Could not find specified recipe."}`, rec.Body.String())
}

func TestReadSearch(t *testing.T) {
	svc := seedService(t)
	read := NewReadController(svc)

	rec := post(t, read.Handle, `{"searchQuery":"choc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []domain.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)

	// sin matches: Message, no Error
	rec = post(t, read.Handle, `{"searchQuery":"paella"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"No matching recipes found."}`, rec.Body.String())
}

func TestReadBrowse(t *testing.T) {
	svc := seedService(t)
	read := NewReadController(svc)

	rec := post(t, read.Handle, `{"browse":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []domain.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "r1", all[0].ID)
}

func TestReadDetails(t *testing.T) {
	svc := seedService(t)
	read := NewReadController(svc)

	rec := post(t, read.Handle, `{"recipeDetailsID":"r1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	// proyección congelada: name/ingredients/instructions, sin id
	assert.JSONEq(t,
		`{"name":"Chocolate Brownies","ingredients":["chocolate","flour"],"instructions":"Mix and bake."}`,
		rec.Body.String())

	rec = post(t, read.Handle, `{"recipeDetailsID":"ghost"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Error":"Could not find specified recipe details."}`, rec.Body.String())
}

func TestReadDispatchOrder(t *testing.T) {
	svc := seedService(t)
	read := NewReadController(svc)

	// recipeID gana sobre searchQuery cuando vienen ambos
	rec := post(t, read.Handle, `{"recipeID":"r1","searchQuery":"paella"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var r domain.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "r1", r.ID)
}

func TestReadEmptyEnvelope(t *testing.T) {
	read := NewReadController(newTestService(&fakeRecipeRepo{}))

	rec := post(t, read.Handle, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"Error":"No valid recipe ID, search query, browse request, or recipe details ID was provided."}`,
		rec.Body.String())
}
