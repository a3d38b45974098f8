package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobmatch/pkg/job"
	"github.com/artem13815/jobmatch/pkg/storage/postgres"
)

// fakeRow fills Scan destinations in column order.
type fakeRow struct {
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *[]string:
			if v := r.values[i]; v != nil {
				*p = v.([]string)
			} else {
				*p = nil
			}
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *bool:
			*p = r.values[i].(bool)
		}
	}
	return nil
}

func row(skills any) fakeRow {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	return fakeRow{values: []any{
		int64(3), "DevOps", "CloudSolutions", "Remote", "desc", "req",
		skills, "48k-58k €", "CDI", "Mid-level", created, true,
	}}
}

func TestScanOffer(t *testing.T) {
	o, err := scanOffer(row([]string{"docker", "aws"}))
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.ID)
	assert.Equal(t, []string{"docker", "aws"}, o.SkillsRequired)
	assert.Equal(t, time.UTC, o.CreatedAt.Location())
	assert.Equal(t, 10, o.CreatedAt.Hour())
	assert.True(t, o.IsActive)
}

func TestScanOffer_NullSkills(t *testing.T) {
	o, err := scanOffer(row(nil))
	require.NoError(t, err)
	assert.NotNil(t, o.SkillsRequired)
	assert.Empty(t, o.SkillsRequired)
}

func TestJobRepository_Disconnected(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository(postgres.NewHandle("", nil))

	_, err := repo.ListActive(ctx)
	assert.ErrorIs(t, err, job.ErrUnavailable)
	_, err = repo.GetActive(ctx, 1)
	assert.ErrorIs(t, err, job.ErrUnavailable)
	_, err = repo.Count(ctx)
	assert.ErrorIs(t, err, job.ErrUnavailable)
}
