package job

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("job offer not found")
	// ErrUnavailable is returned by repositories while the database is not reachable.
	ErrUnavailable = errors.New("job storage unavailable")
)

// Offer is a posted vacancy. Skills are lowercase tags.
type Offer struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements"`
	SkillsRequired  []string  `json:"skills_required"`
	SalaryRange     string    `json:"salary_range"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
	IsActive        bool      `json:"is_active"`
}

// Repository описывает порт доступа к таблице job_offers.
type Repository interface {
	EnsureSchema(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, o Offer) (int64, error)
	// ListActive returns active offers, newest first.
	ListActive(ctx context.Context) ([]Offer, error)
	GetActive(ctx context.Context, id int64) (Offer, error)
}

// Cache keeps the last active list between requests.
type Cache interface {
	GetActive(ctx context.Context) ([]Offer, bool)
	SetActive(ctx context.Context, offers []Offer)
	Invalidate(ctx context.Context)
}

// SplitSkills turns delimited skill text ("a, b,c") into tags.
func SplitSkills(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinSkills is the inverse of SplitSkills.
func JoinSkills(skills []string) string {
	return strings.Join(NormalizeSkills(skills), ",")
}

// NormalizeSkills lower-cases and trims tags, dropping empty ones.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
