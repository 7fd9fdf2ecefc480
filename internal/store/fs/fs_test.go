package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestUserRepo_CreateAndGetHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	_, found, err := users.GetHash(ctx, "ana")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, users.Create(ctx, "ana", "hash-1"))

	h, found, err := users.GetHash(ctx, "ana")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hash-1", h)

	// re-registro: falla y el hash guardado no cambia
	err = users.Create(ctx, "ana", "hash-2")
	require.ErrorIs(t, err, domain.ErrUserExists)
	h, _, _ = users.GetHash(ctx, "ana")
	require.Equal(t, "hash-1", h)
}

func TestRecipeRepo_CreateDuplicateAndOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	recipes := s.Recipes()

	r1 := domain.Recipe{ID: "r1", Name: "Brownie", Ingredients: []string{"chocolate"}, Instructions: "bake", CookingTime: "40 minutes"}
	r2 := domain.Recipe{ID: "r2", Name: "Flan", Ingredients: []string{"huevo"}, Instructions: "mix", CookingTime: "60 minutes"}

	require.NoError(t, recipes.Create(ctx, r1))
	require.NoError(t, recipes.Create(ctx, r2))

	err := recipes.Create(ctx, r1)
	require.ErrorIs(t, err, domain.ErrDuplicateID)

	list, err := recipes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "r1", list[0].ID)
	require.Equal(t, "r2", list[1].ID)
}

func TestRecipeRepo_UpdateNotFoundLeavesSnapshotUntouched(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	recipes := s.Recipes()

	r1 := domain.Recipe{ID: "r1", Name: "Brownie", Ingredients: []string{"chocolate"}, Instructions: "bake", CookingTime: "40 minutes"}
	require.NoError(t, recipes.Create(ctx, r1))

	before, err := os.ReadFile(filepath.Join(s.root, recipesFile))
	require.NoError(t, err)

	err = recipes.Update(ctx, domain.Recipe{ID: "ghost", Name: "x", Ingredients: []string{"y"}, Instructions: "z", CookingTime: "1"})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	after, err := os.ReadFile(filepath.Join(s.root, recipesFile))
	require.NoError(t, err)
	require.Equal(t, before, after, "failed edit must not rewrite the snapshot")
}

func TestRecipeRepo_UpdateKeepsPosition(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	recipes := s.Recipes()

	require.NoError(t, recipes.Create(ctx, domain.Recipe{ID: "a", Name: "A", Ingredients: []string{"i"}, Instructions: "x", CookingTime: "1"}))
	require.NoError(t, recipes.Create(ctx, domain.Recipe{ID: "b", Name: "B", Ingredients: []string{"i"}, Instructions: "x", CookingTime: "1"}))

	require.NoError(t, recipes.Update(ctx, domain.Recipe{ID: "a", Name: "A2", Ingredients: []string{"i2"}, Instructions: "x2", CookingTime: "2"}))

	list, _ := recipes.List(ctx)
	require.Equal(t, "a", list[0].ID)
	require.Equal(t, "A2", list[0].Name)
	require.Equal(t, "b", list[1].ID)
}

func TestInteractionRepo_AppendOnlyInCallOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	inter := s.Interactions()

	for _, r := range []int{4, 5, 3} {
		_, err := inter.AddRating(ctx, "r1", r)
		require.NoError(t, err)
	}
	rec, found, err := inter.Get(ctx, "r1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{4, 5, 3}, rec.Ratings)
	require.InDelta(t, 4.0, rec.AverageRating(), 1e-9)

	// tags duplicados se conservan
	require.NoError(t, inter.AddTag(ctx, "r1", "dulce"))
	require.NoError(t, inter.AddTag(ctx, "r1", "dulce"))
	rec, _, _ = inter.Get(ctx, "r1")
	require.Equal(t, []string{"dulce", "dulce"}, rec.Tags)
}

func TestSnapshotFormat_IsTheHistoricalOne(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, "ana", "abc"))
	_, err := s.Interactions().AddRating(ctx, "r9", 5)
	require.NoError(t, err)

	// users.json es un mapa username → hash
	b, err := os.ReadFile(filepath.Join(s.root, usersFile))
	require.NoError(t, err)
	var users map[string]string
	require.NoError(t, json.Unmarshal(b, &users))
	require.Equal(t, "abc", users["ana"])

	// interactions.json es un mapa id → {ratings, tags}
	b, err = os.ReadFile(filepath.Join(s.root, interactionsFile))
	require.NoError(t, err)
	var recs map[string]struct {
		Ratings []int    `json:"ratings"`
		Tags    []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(b, &recs))
	require.Equal(t, []int{5}, recs["r9"].Ratings)
}
