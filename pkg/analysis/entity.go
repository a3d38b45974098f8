package analysis

import (
	"github.com/artem13815/jobmatch/pkg/job"
	"github.com/artem13815/jobmatch/pkg/resume"
)

// DefaultThreshold is the minimal match score a job needs to be reported.
const DefaultThreshold = 30

// Match хранит вакансию с процентом совпадения навыков.
type Match struct {
	job.Offer
	MatchScore     int      `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
}

// Result is the outcome of a CV analysis.
type Result struct {
	Success      bool               `json:"success"`
	UserSkills   map[string]float64 `json:"userSkills"`
	MatchingJobs []Match            `json:"matchingJobs"`
	TotalMatches int                `json:"totalMatches"`
	Message      string             `json:"message"`
	Upload       resume.Upload      `json:"upload"`
}
