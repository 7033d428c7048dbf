package resumes

import (
	"regexp"
	"strings"

	"jobfit-backend/internal/shared/telemetry"
)

// FilterUngrounded drops or nulls model-parsed fields that are not literally
// present in the source resume text. It mitigates hallucinated employers,
// titles, and institutions.
//
// Policy, deliberately asymmetric: an experience entry with no company name
// is kept (absence cannot be validated), while an education entry with
// neither institute nor course name is dropped.
func FilterUngrounded(data ParsedResumeData, originalText string) ParsedResumeData {
	out := data
	out.Experiences = filterExperiences(data.Experiences, originalText)
	out.Education = filterEducation(data.Education, originalText)
	return out
}

func filterExperiences(entries []Experience, originalText string) []Experience {
	var out []Experience
	for _, exp := range entries {
		if exp.CompanyName.Present() && !grounded(exp.CompanyName.String(), originalText) {
			telemetry.Info("resume.validation_drop", map[string]any{
				"kind":  "experience",
				"field": "company_name",
				"value": exp.CompanyName.String(),
			})
			continue
		}
		if exp.JobTitle.Present() && !grounded(exp.JobTitle.String(), originalText) {
			telemetry.Info("resume.validation_drop", map[string]any{
				"kind":  "experience",
				"field": "job_title",
				"value": exp.JobTitle.String(),
			})
			exp.JobTitle = NullString{}
		}
		out = append(out, exp)
	}
	return out
}

func filterEducation(entries []Education, originalText string) []Education {
	var out []Education
	for _, edu := range entries {
		keep := (edu.InstituteName.Present() && grounded(edu.InstituteName.String(), originalText)) ||
			(edu.CourseCertificationName.Present() && grounded(edu.CourseCertificationName.String(), originalText))
		if !keep {
			telemetry.Info("resume.validation_drop", map[string]any{
				"kind":      "education",
				"institute": edu.InstituteName.String(),
				"course":    edu.CourseCertificationName.String(),
			})
			continue
		}
		out = append(out, edu)
	}
	return out
}

// grounded tests whether field occurs as a literal case-insensitive substring
// of originalText. Regex metacharacters in field are neutralized.
func grounded(field, originalText string) bool {
	field = strings.TrimSpace(field)
	if field == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(field))
	if err != nil {
		return false
	}
	return re.MatchString(originalText)
}
