package comparisons

import (
	"fmt"
	"math"
	"strings"

	"jobfit-backend/internal/textutil"
)

// advancedCriteriaBaselines drive the synthetic advanced_criteria entries in
// fallback reports. The statuses are derived purely from the final score
// against each baseline; this is a deterministic heuristic, not semantic
// analysis of the documents.
var advancedCriteriaBaselines = []struct {
	name        string
	baseline    int
	description string
}{
	{"Core Skills Alignment", 60, "Overlap between tracked technical keywords in both documents."},
	{"Experience Relevance", 70, "How closely the resume content tracks the role described."},
	{"Keyword Coverage", 75, "Share of job-description vocabulary present in the resume."},
	{"Role Fit", 65, "Overall similarity of the two documents."},
	{"Domain Expertise", 80, "Depth of specialized terminology shared with the job description."},
}

// ScoreFallback computes a deterministic match report from keyword overlap
// and length similarity. It never touches the network and is the degraded
// path when the model call is unavailable or returns garbage.
func ScoreFallback(resumeText, jobText string) Result {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return Result{MatchScore: 0, Source: SourceFallback, Report: Report{}}
	}

	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	hard := matchKeywords(hardSkillKeywords, jobLower, resumeLower)
	soft := matchKeywords(softSkillKeywords, jobLower, resumeLower)

	totalKeywords := len(hard) + len(soft)
	matchCount := 0
	for _, kw := range hard {
		if kw.Matched {
			matchCount++
		}
	}
	for _, kw := range soft {
		if kw.Matched {
			matchCount++
		}
	}

	keywordScore := 50.0
	if totalKeywords > 0 {
		keywordScore = float64(matchCount) / float64(totalKeywords) * 100.0
	}

	lengthScore := lengthSimilarity(len(resumeText), len(jobText))

	finalScore := int(math.Round(keywordScore*0.7 + lengthScore*0.3))
	if finalScore < 0 {
		finalScore = 0
	}
	if finalScore > 100 {
		finalScore = 100
	}

	report := Report{
		MatchScore:       finalScore,
		Keywords:         Keywords{HardSkills: hard, SoftSkills: soft},
		ATSChecks:        fallbackATSChecks(resumeText),
		Suggestions:      fallbackSuggestions(finalScore, matchCount, totalKeywords),
		AdvancedCriteria: fallbackAdvancedCriteria(finalScore),
		SectionAnalysis:  fallbackSectionAnalysis(resumeText),
	}
	return Result{MatchScore: finalScore, Source: SourceFallback, Report: report}
}

func matchKeywords(vocab []string, jobLower, resumeLower string) []KeywordMatch {
	var out []KeywordMatch
	for _, kw := range vocab {
		if !strings.Contains(jobLower, kw) {
			continue
		}
		out = append(out, KeywordMatch{
			Term:    kw,
			Matched: strings.Contains(resumeLower, kw),
		})
	}
	return out
}

// lengthSimilarity maps the relative length difference of the two documents
// onto [50,100]: identical lengths score 100, maximally different score 50.
func lengthSimilarity(resumeLen, jobLen int) float64 {
	longest := resumeLen
	if jobLen > longest {
		longest = jobLen
	}
	if longest == 0 {
		return 100
	}
	diff := math.Abs(float64(resumeLen - jobLen))
	return 100 - diff/float64(longest)*50
}

func fallbackATSChecks(resumeText string) []ATSCheck {
	checks := make([]ATSCheck, 0, 3)

	if textutil.ExtractEmail(resumeText) != "" {
		checks = append(checks, ATSCheck{"Contact Email", CheckPass, "An email address was found in the resume."})
	} else {
		checks = append(checks, ATSCheck{"Contact Email", CheckFail, "No email address was found in the resume."})
	}

	if textutil.ExtractPhone(resumeText) != "" {
		checks = append(checks, ATSCheck{"Contact Phone", CheckPass, "A phone number was found in the resume."})
	} else {
		checks = append(checks, ATSCheck{"Contact Phone", CheckWarning, "No phone number was found in the resume."})
	}

	words := len(strings.Fields(resumeText))
	switch {
	case words < 150:
		checks = append(checks, ATSCheck{"Resume Length", CheckWarning, fmt.Sprintf("Resume is short (%d words); consider adding detail.", words)})
	case words > 1200:
		checks = append(checks, ATSCheck{"Resume Length", CheckWarning, fmt.Sprintf("Resume is long (%d words); consider trimming.", words)})
	default:
		checks = append(checks, ATSCheck{"Resume Length", CheckPass, fmt.Sprintf("Resume length (%d words) is in a reasonable range.", words)})
	}

	return checks
}

func fallbackSuggestions(finalScore, matchCount, totalKeywords int) []string {
	var out []string
	if finalScore < 50 {
		out = append(out, "Tailor the resume to this job description; the current overlap is low.")
	}
	if finalScore < 60 {
		out = append(out, "Mirror key terminology from the job description where it truthfully applies.")
	}
	if finalScore < 70 {
		out = append(out, "Add a skills section listing the technologies the role asks for.")
	}
	if totalKeywords > 0 && matchCount < totalKeywords {
		out = append(out, fmt.Sprintf("The job description mentions %d tracked keywords; the resume covers %d of them.", totalKeywords, matchCount))
	}
	out = append(out, "Quantify achievements with concrete numbers where possible.")
	return out
}

func fallbackAdvancedCriteria(finalScore int) []AdvancedCriterion {
	out := make([]AdvancedCriterion, 0, len(advancedCriteriaBaselines))
	for _, c := range advancedCriteriaBaselines {
		status := CriterionMissing
		switch {
		case finalScore > c.baseline+15:
			status = CriterionMatched
		case finalScore >= c.baseline-15:
			status = CriterionPartial
		}
		out = append(out, AdvancedCriterion{Name: c.name, Status: status, Description: c.description})
	}
	return out
}

func fallbackSectionAnalysis(resumeText string) *SectionAnalysis {
	describe := func(headers []string, label string) string {
		if body, ok := textutil.ExtractSection(resumeText, headers); ok && body != "" {
			return fmt.Sprintf("A %s section was found.", label)
		}
		return fmt.Sprintf("No %s section was detected.", label)
	}
	return &SectionAnalysis{
		Education:  describe([]string{"education"}, "education"),
		Experience: describe([]string{"experience", "employment"}, "work experience"),
		Skills:     describe([]string{"skills"}, "skills"),
		Projects:   describe([]string{"projects"}, "projects"),
	}
}
