package analysis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/artem13815/jobmatch/pkg/events"
	"github.com/artem13815/jobmatch/pkg/job"
	"github.com/artem13815/jobmatch/pkg/nlp"
	"github.com/artem13815/jobmatch/pkg/resume"
)

// UseCase сопоставляет навыки из CV с активными вакансиями.
type UseCase interface {
	AnalyzeResume(ctx context.Context, upload resume.Upload, text string) (Result, error)
}

type service struct {
	jobs      job.UseCase
	events    events.Publisher
	threshold int
}

// NewService builds the analysis use case. A nil publisher disables events,
// a non-positive threshold means DefaultThreshold.
func NewService(jobs job.UseCase, publisher events.Publisher, threshold int) UseCase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &service{jobs: jobs, events: publisher, threshold: threshold}
}

func (s *service) AnalyzeResume(ctx context.Context, upload resume.Upload, text string) (Result, error) {
	userSkills := nlp.ExtractSkills(text)
	log.Printf("[analysis] %s: detected skills %v", upload.Filename, nlp.SkillNames(userSkills))

	offers, err := s.jobs.ListActive(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list offers: %w", err)
	}
	if len(offers) == 0 {
		log.Printf("[analysis] %s: no active offers, matching against fallback offers", upload.Filename)
		offers = job.FallbackOffers()
	}
	matches := MatchJobs(offers, userSkills, s.threshold)
	log.Printf("[analysis] %s: %d matching offers", upload.Filename, len(matches))

	ev := events.CVAnalyzed{
		UploadID:     upload.ID,
		Filename:     upload.Filename,
		Pages:        upload.Pages,
		Skills:       nlp.SkillNames(userSkills),
		TotalMatches: len(matches),
		AnalyzedAt:   time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, events.RoutingCVAnalyzed, ev); err != nil {
		log.Printf("[analysis] publish %s: %v", events.RoutingCVAnalyzed, err)
	}

	return Result{
		Success:      true,
		UserSkills:   userSkills,
		MatchingJobs: matches,
		TotalMatches: len(matches),
		Message:      fmt.Sprintf("Analysis complete: %d offers match your profile.", len(matches)),
		Upload:       upload,
	}, nil
}
