package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/artem13815/jobmatch/pkg/job"
)

// timeLayout sorts lexicographically in UTC.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Open opens a SQLite database. dsn may carry a "sqlite:" or "sqlite://" prefix.
func Open(dsn string) (*sql.DB, error) {
	path := strings.TrimPrefix(strings.TrimPrefix(dsn, "sqlite://"), "sqlite:")
	if path == "" {
		return nil, errors.New("sqlite: empty database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}
	return db, nil
}

// JobRepository keeps offers in SQLite; skills are stored as comma-delimited text.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS job_offers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT,
	description TEXT,
	requirements TEXT,
	skills_required TEXT NOT NULL DEFAULT '',
	salary_range TEXT,
	job_type TEXT,
	experience_level TEXT,
	created_at TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_job_offers_active ON job_offers(is_active, created_at);
`)
	return err
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_offers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *JobRepository) Insert(ctx context.Context, o job.Offer) (int64, error) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO job_offers (title, company, location, description, requirements, skills_required,
	salary_range, job_type, experience_level, created_at, is_active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, strings.TrimSpace(o.Title), o.Company, o.Location, o.Description, o.Requirements,
		job.JoinSkills(o.SkillsRequired), o.SalaryRange, o.JobType, o.ExperienceLevel,
		o.CreatedAt.UTC().Format(timeLayout), o.IsActive)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const selectOffer = `
SELECT id, title, company, COALESCE(location, ''), COALESCE(description, ''),
	COALESCE(requirements, ''), skills_required, COALESCE(salary_range, ''),
	COALESCE(job_type, ''), COALESCE(experience_level, ''), created_at, is_active
FROM job_offers`

func (r *JobRepository) ListActive(ctx context.Context) ([]job.Offer, error) {
	rows, err := r.db.QueryContext(ctx, selectOffer+` WHERE is_active = 1 ORDER BY created_at DESC, id DESC`)
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
	o, err := scanOffer(r.db.QueryRowContext(ctx, selectOffer+` WHERE id = ? AND is_active = 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return job.Offer{}, job.ErrNotFound
		}
		return job.Offer{}, err
	}
	return o, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOffer(row scanner) (job.Offer, error) {
	var o job.Offer
	var skills, created string
	if err := row.Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Description,
		&o.Requirements, &skills, &o.SalaryRange, &o.JobType,
		&o.ExperienceLevel, &created, &o.IsActive); err != nil {
		return job.Offer{}, err
	}
	o.SkillsRequired = job.SplitSkills(skills)
	if t, err := time.Parse(timeLayout, created); err == nil {
		o.CreatedAt = t.UTC()
	}
	return o, nil
}
