package analysis

import (
	"math"
	"sort"

	"github.com/artem13815/jobmatch/pkg/job"
)

// Score returns round(100 * |job skills present in userSkills| / |job skills|)
// and the matched skills in job order. Duplicate job skills count each time.
func Score(o job.Offer, userSkills map[string]float64) (int, []string) {
	matching := []string{}
	if len(o.SkillsRequired) == 0 {
		return 0, matching
	}
	for _, s := range o.SkillsRequired {
		if _, ok := userSkills[s]; ok {
			matching = append(matching, s)
		}
	}
	if len(matching) == 0 {
		return 0, matching
	}
	score := math.Round(100 * float64(len(matching)) / float64(len(o.SkillsRequired)))
	return int(score), matching
}

// MatchJobs scores every offer, keeps those with score >= threshold and sorts
// them by score, highest first. Equal scores keep their input order.
func MatchJobs(offers []job.Offer, userSkills map[string]float64, threshold int) []Match {
	out := make([]Match, 0, len(offers))
	for _, o := range offers {
		score, matching := Score(o, userSkills)
		if score == 0 || score < threshold {
			continue
		}
		out = append(out, Match{Offer: o, MatchScore: score, MatchingSkills: matching})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}
