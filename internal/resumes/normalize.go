package resumes

import (
	"regexp"
	"strings"
)

var (
	monthYearRe = regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+\d{4}$`)
	presentRe   = regexp.MustCompile(`(?i)^\s*(present|current(ly)?|now|till\s+date)\s*$`)
)

// Normalize post-processes parsed resume data. The input is not mutated; all
// slices are rebuilt.
func Normalize(data ParsedResumeData) ParsedResumeData {
	out := data

	out.Experiences = make([]Experience, 0, len(data.Experiences))
	for _, exp := range data.Experiences {
		if exp.JobTitle.Val != nil && strings.TrimSpace(*exp.JobTitle.Val) == "" {
			exp.JobTitle = NullString{}
		}
		exp.StartDate = normalizeDate(exp.StartDate)
		exp.EndDate = normalizeDate(exp.EndDate)
		exp.SkillsToolsUsed = dedupeSkills(cleanList(exp.SkillsToolsUsed))
		out.Experiences = append(out.Experiences, exp)
	}

	out.Education = make([]Education, 0, len(data.Education))
	for _, edu := range data.Education {
		edu.StartDate = normalizeDate(edu.StartDate)
		edu.EndDate = normalizeDate(edu.EndDate)
		out.Education = append(out.Education, edu)
	}

	out.Skills = dedupeSkills(cleanList(data.Skills))
	return out
}

// normalizeDate keeps "<Month> <YYYY>" strings as-is, folds present-tense
// variants to "Present", and passes everything else through unchanged. There
// is intentionally no general date parser here.
func normalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if monthYearRe.MatchString(trimmed) {
		return trimmed
	}
	if presentRe.MatchString(trimmed) {
		return "Present"
	}
	return raw
}

func cleanList(list StringList) StringList {
	out := make(StringList, 0, len(list))
	for _, item := range list {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// dedupeSkills removes case-insensitive duplicates, keeping the casing of the
// first occurrence and first-insertion order.
func dedupeSkills(list StringList) StringList {
	seen := make(map[string]struct{}, len(list))
	out := make(StringList, 0, len(list))
	for _, item := range list {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
