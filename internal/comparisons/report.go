package comparisons

import "time"

// Check and criterion statuses used in reports.
const (
	CheckPass    = "pass"
	CheckFail    = "fail"
	CheckWarning = "warning"

	CriterionMatched = "matched"
	CriterionPartial = "partial"
	CriterionMissing = "missing"
)

// Result sources. Callers can tell a full model report from a degraded one.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// KeywordMatch records whether a job-description term appears in the resume.
type KeywordMatch struct {
	Term    string `json:"term"`
	Matched bool   `json:"matched"`
}

type Keywords struct {
	HardSkills []KeywordMatch `json:"hard_skills"`
	SoftSkills []KeywordMatch `json:"soft_skills"`
}

type ATSCheck struct {
	CheckName string `json:"check_name"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

type AdvancedCriterion struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type SectionAnalysis struct {
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	Projects   string `json:"projects"`
}

// Report is the structured match analysis returned to callers, whether it
// came from the model or from the keyword fallback.
type Report struct {
	MatchScore       int                 `json:"match_score"`
	Keywords         Keywords            `json:"keywords"`
	ATSChecks        []ATSCheck          `json:"ats_checks"`
	Suggestions      []string            `json:"suggestions"`
	AdvancedCriteria []AdvancedCriterion `json:"advanced_criteria,omitempty"`
	SectionAnalysis  *SectionAnalysis    `json:"section_analysis,omitempty"`
}

// Result pairs a report with its provenance.
type Result struct {
	MatchScore int    `json:"match_score"`
	Source     string `json:"source"`
	Report     Report `json:"analysis"`
}

// RateLimitState is the explicit AI-budget input to Compare. When RateLimited
// is set and ResetAt is in the future, the model call is skipped and the
// fallback scorer is used directly.
type RateLimitState struct {
	RateLimited bool
	ResetAt     time.Time
}

// Active reports whether the limit still applies at time now.
func (s RateLimitState) Active(now time.Time) bool {
	return s.RateLimited && now.Before(s.ResetAt)
}
