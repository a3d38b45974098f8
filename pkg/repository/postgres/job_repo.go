package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobmatch/pkg/job"
	"github.com/artem13815/jobmatch/pkg/storage/postgres"
)

// JobRepository хранит вакансии; навыки лежат в TEXT[].
type JobRepository struct {
	db *postgres.Handle
}

func NewJobRepository(db *postgres.Handle) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) pool() (*pgxpool.Pool, error) {
	p, err := r.db.Pool()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", job.ErrUnavailable, err)
	}
	return p, nil
}

func (r *JobRepository) EnsureSchema(ctx context.Context) error {
	p, err := r.pool()
	if err != nil {
		return err
	}
	_, err = p.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_offers (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT,
	description TEXT,
	requirements TEXT,
	skills_required TEXT[] NOT NULL DEFAULT '{}',
	salary_range TEXT,
	job_type TEXT,
	experience_level TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS idx_job_offers_active ON job_offers(is_active, created_at DESC);
`)
	return err
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	p, err := r.pool()
	if err != nil {
		return 0, err
	}
	var n int
	if err := p.QueryRow(ctx, `SELECT COUNT(*) FROM job_offers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *JobRepository) Insert(ctx context.Context, o job.Offer) (int64, error) {
	p, err := r.pool()
	if err != nil {
		return 0, err
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	var id int64
	err = p.QueryRow(ctx, `
INSERT INTO job_offers (title, company, location, description, requirements, skills_required,
	salary_range, job_type, experience_level, created_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`, strings.TrimSpace(o.Title), o.Company, o.Location, o.Description, o.Requirements,
		job.NormalizeSkills(o.SkillsRequired), o.SalaryRange, o.JobType, o.ExperienceLevel,
		o.CreatedAt, o.IsActive).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

const selectOffer = `
SELECT id, title, company, COALESCE(location, ''), COALESCE(description, ''),
	COALESCE(requirements, ''), skills_required, COALESCE(salary_range, ''),
	COALESCE(job_type, ''), COALESCE(experience_level, ''), created_at, is_active
FROM job_offers`

func (r *JobRepository) ListActive(ctx context.Context) ([]job.Offer, error) {
	p, err := r.pool()
	if err != nil {
		return nil, err
	}
	rows, err := p.Query(ctx, selectOffer+` WHERE is_active = TRUE ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []job.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func (r *JobRepository) GetActive(ctx context.Context, id int64) (job.Offer, error) {
	p, err := r.pool()
	if err != nil {
		return job.Offer{}, err
	}
	o, err := scanOffer(p.QueryRow(ctx, selectOffer+` WHERE id = $1 AND is_active = TRUE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Offer{}, job.ErrNotFound
		}
		return job.Offer{}, err
	}
	return o, nil
}

func scanOffer(row pgx.Row) (job.Offer, error) {
	var o job.Offer
	var created time.Time
	if err := row.Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Description,
		&o.Requirements, &o.SkillsRequired, &o.SalaryRange, &o.JobType,
		&o.ExperienceLevel, &created, &o.IsActive); err != nil {
		return job.Offer{}, err
	}
	o.CreatedAt = created.UTC()
	if o.SkillsRequired == nil {
		o.SkillsRequired = []string{}
	}
	return o, nil
}
