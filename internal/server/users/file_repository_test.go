package users

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *FileRepository {
	t.Helper()
	return NewFileRepository(storage.NewJSONFile(filepath.Join(t.TempDir(), "users.json")))
}

func TestFileRepository_List_EmptyWhenFileAbsent(t *testing.T) {
	r := newTestRepo(t)

	users, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFileRepository_Create_AllocatesUniqueIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	const n = 20
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		u, err := r.Create(ctx, CreateParams{
			Username: "user",
			Email:    string(rune('a'+i)) + "@example.com",
			Name:     "User",
		})
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.False(t, u.CreatedAt.IsZero())
		seen[u.ID] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestFileRepository_Create_DuplicateEmailRejected(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, CreateParams{Username: "a", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)

	_, err = r.Create(ctx, CreateParams{Username: "b", Email: "A@Example.com", Name: "B"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	users, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestFileRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, CreateParams{Username: "a", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)

	got, err := r.GetByEmail(ctx, "A@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = r.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFileRepository_Update_ShallowMerge(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, CreateParams{Username: "a", Email: "a@example.com", Name: "A", Bio: "old bio"})
	require.NoError(t, err)

	newBio := "new bio"
	updated, err := r.Update(ctx, created.ID, UpdateParams{Bio: &newBio})
	require.NoError(t, err)

	// touched field changed, everything else survived
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "a@example.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestFileRepository_Update_DuplicateEmailRejected(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, CreateParams{Username: "a", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)
	b, err := r.Create(ctx, CreateParams{Username: "b", Email: "b@example.com", Name: "B"})
	require.NoError(t, err)

	taken := "A@Example.com"
	_, err = r.Update(ctx, b.ID, UpdateParams{Email: &taken})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// record b survived untouched
	got, err := r.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", got.Email)

	// updating a record to its own email is not a conflict
	own := "B@Example.com"
	updated, err := r.Update(ctx, b.ID, UpdateParams{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "B@Example.com", updated.Email)
}

func TestFileRepository_ConcurrentCreatesAllSurvive(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	const n = 16
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Create(ctx, CreateParams{
				Username: fmt.Sprintf("user%02d", i),
				Email:    fmt.Sprintf("user%02d@example.com", i),
				Name:     "User",
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	users, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, n)

	ids := make(map[string]struct{}, n)
	for _, u := range users {
		ids[u.ID] = struct{}{}
	}
	assert.Len(t, ids, n)
}

func TestFileRepository_ConcurrentUpdatesAllSurvive(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	const n = 16
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		u, err := r.Create(ctx, CreateParams{
			Username: fmt.Sprintf("user%02d", i),
			Email:    fmt.Sprintf("user%02d@example.com", i),
			Name:     "User",
		})
		require.NoError(t, err)
		ids[i] = u.ID
	}

	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bio := fmt.Sprintf("bio %02d", i)
			_, errs[i] = r.Update(ctx, ids[i], UpdateParams{Bio: &bio})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	// no update was lost to a concurrent read-modify-write
	for i, id := range ids {
		got, err := r.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("bio %02d", i), got.Bio)
	}
}

func TestFileRepository_Update_UnknownIDIsNotFound(t *testing.T) {
	r := newTestRepo(t)

	name := "x"
	_, err := r.Update(context.Background(), "nope", UpdateParams{Name: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFileRepository_Delete_ThenGetIsNotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, CreateParams{Username: "a", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.Get(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// deleting again must not mutate anything
	err = r.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
