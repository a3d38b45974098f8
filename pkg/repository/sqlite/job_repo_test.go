package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobmatch/pkg/job"
)

func newRepo(t *testing.T) *JobRepository {
	t.Helper()
	db, err := Open("sqlite:" + filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewJobRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestJobRepository_ListActiveOnly(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.Insert(ctx, job.Offer{Title: "Old", Company: "A", SkillsRequired: []string{"Go", " SQL"}, IsActive: true, CreatedAt: base})
	require.NoError(t, err)
	hiddenID, err := repo.Insert(ctx, job.Offer{Title: "Closed", Company: "B", IsActive: false, CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, job.Offer{Title: "New", Company: "C", SkillsRequired: []string{"docker"}, IsActive: true, CreatedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	got, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "New", got[0].Title)
	assert.Equal(t, "Old", got[1].Title)
	assert.Equal(t, []string{"go", "sql"}, got[1].SkillsRequired)
	assert.True(t, got[1].CreatedAt.Equal(base))
	for _, o := range got {
		assert.True(t, o.IsActive)
	}

	_, err = repo.GetActive(ctx, hiddenID)
	assert.ErrorIs(t, err, job.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestJobRepository_BootstrapThroughService(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	svc := job.NewService(repo, nil)

	n, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// second bootstrap is a no-op
	n, err = svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	offers, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 3)

	o, err := svc.GetByID(ctx, offers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, offers[0].Title, o.Title)
	assert.NotEmpty(t, o.SkillsRequired)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("sqlite:")
	assert.Error(t, err)
}
