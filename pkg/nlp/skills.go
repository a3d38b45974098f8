package nlp

import (
	"sort"
	"strings"
)

// DefaultConfidence is assigned to every detected skill.
const DefaultConfidence = 0.8

// skillKeywords maps a skill tag to the substrings that reveal it.
var skillKeywords = map[string][]string{
	"javascript":       {"javascript", "js"},
	"react":            {"react", "react.js"},
	"node.js":          {"node", "node.js", "express"},
	"python":           {"python"},
	"java":             {"java"},
	"sql":              {"sql", "mysql"},
	"mongodb":          {"mongodb"},
	"docker":           {"docker"},
	"aws":              {"aws"},
	"html":             {"html"},
	"css":              {"css"},
	"typescript":       {"typescript", "ts"},
	"flutter":          {"flutter"},
	"kubernetes":       {"kubernetes"},
	"machine learning": {"machine learning", "ml"},
	"tensorflow":       {"tensorflow"},
}

// ExtractSkills detects known skills in free text by plain substring lookup.
// Matching is case-insensitive; "ReactJS" counts as react, "Java" inside
// "JavaScript" counts as java.
func ExtractSkills(text string) map[string]float64 {
	found := make(map[string]float64)
	lower := strings.ToLower(text)
	if lower == "" {
		return found
	}
	for skill, keywords := range skillKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found[skill] = DefaultConfidence
				break
			}
		}
	}
	return found
}

// SkillNames returns detected skill tags in alphabetical order.
func SkillNames(found map[string]float64) []string {
	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// KnownSkills lists every tag the extractor can report.
func KnownSkills() []string {
	out := make([]string, 0, len(skillKeywords))
	for s := range skillKeywords {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
