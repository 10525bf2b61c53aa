package projects

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*OptionsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewOptionsCache(client, time.Minute, zerolog.Nop()), mr
}

func TestOptionsCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "status")
	assert.False(t, ok)

	cache.Set(ctx, "status", []string{"Approved", "Pending"})

	values, ok := cache.Get(ctx, "status")
	require.True(t, ok)
	assert.Equal(t, []string{"Approved", "Pending"}, values)
}

func TestOptionsCacheInvalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	cache.Set(ctx, "status", []string{"Approved"})
	cache.Set(ctx, "place", []string{"Metropolis"})
	cache.Set(ctx, "user", []string{"jdoe"})

	cache.Invalidate(ctx)

	for _, field := range []string{"status", "place", "user"} {
		_, ok := cache.Get(ctx, field)
		assert.False(t, ok, "field %s should be gone", field)
	}
}

func TestOptionsCacheExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	cache.Set(ctx, "status", []string{"Approved"})
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "status")
	assert.False(t, ok)
}

func TestRepoDistinctValuesReadThrough(t *testing.T) {
	cache, _ := setupCache(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepo(db).WithOptionsCache(cache)
	ctx := context.Background()

	// First call misses the cache and hits the database.
	mock.ExpectQuery(`SELECT DISTINCT status FROM projects`).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).
			AddRow("Approved").
			AddRow("Pending"))

	values, err := repo.DistinctValues(ctx, "status")
	require.NoError(t, err)
	assert.Equal(t, []string{"Approved", "Pending"}, values)
	require.NoError(t, mock.ExpectationsWereMet())

	// Second call is served from the cache; no further query expected.
	values, err = repo.DistinctValues(ctx, "status")
	require.NoError(t, err)
	assert.Equal(t, []string{"Approved", "Pending"}, values)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoCreateInvalidatesOptions(t *testing.T) {
	cache, _ := setupCache(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepo(db).WithOptionsCache(cache)
	ctx := context.Background()

	cache.Set(ctx, "status", []string{"Approved"})

	mock.ExpectQuery(`INSERT INTO projects`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(1, "Road", "Pending", "Acme", time.Now(), "Metropolis", "jdoe"))

	_, err = repo.Create(ctx, CreateInput{
		Name:      "Road",
		Status:    "pending",
		Applicant: "Acme",
		Place:     "Metropolis",
		User:      "jdoe",
	})
	require.NoError(t, err)

	_, ok := cache.Get(ctx, "status")
	assert.False(t, ok, "create should drop cached option lists")
}
