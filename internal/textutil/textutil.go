// Package textutil holds small text helpers shared by the comparison and
// resume-parsing features: normalization, contact extraction, and a
// best-effort section splitter for free-form resume text.
package textutil

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaceRe    = regexp.MustCompile(`\s+`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
)

// knownSectionHeaders are common resume section names used as stop markers
// when collecting a section's body.
var knownSectionHeaders = []string{
	"summary",
	"objective",
	"experience",
	"work experience",
	"employment",
	"education",
	"skills",
	"technical skills",
	"projects",
	"certifications",
	"awards",
	"publications",
	"languages",
	"interests",
	"references",
}

// Normalize lowercases text and strips punctuation, collapsing runs of
// whitespace to single spaces.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped := nonAlnumRe.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
}

// ExtractEmail returns the first email-looking token in text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone-looking token in text, or "".
// The pattern is loose: optional country code, optional parens, 3-3-4
// grouping with dot, dash, or space separators.
func ExtractPhone(text string) string {
	return strings.TrimSpace(phoneRe.FindString(text))
}

// ExtractSection scans text line by line and returns the body of the first
// section whose header line contains one of headers (case-insensitive).
// A header line must be shorter than 50 characters to count; collection
// stops at the next line that is exactly another known section header.
// Returns ("", false) if no matching header line is found.
//
// This is a heuristic for linear, single-column resumes and will be
// unreliable on multi-column layouts.
func ExtractSection(text string, headers []string) (string, bool) {
	if len(headers) == 0 {
		return "", false
	}
	lowerHeaders := make([]string, 0, len(headers))
	for _, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			lowerHeaders = append(lowerHeaders, h)
		}
	}
	stopRe := stopPattern(lowerHeaders)

	lines := strings.Split(text, "\n")
	var collected []string
	inSection := false
	for _, line := range lines {
		if !inSection {
			if isHeaderLine(line, lowerHeaders) {
				inSection = true
			}
			continue
		}
		if stopRe.MatchString(line) {
			break
		}
		collected = append(collected, line)
	}
	if !inSection {
		return "", false
	}
	return strings.TrimSpace(strings.Join(collected, "\n")), true
}

func isHeaderLine(line string, lowerHeaders []string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= 50 {
		return false
	}
	lowered := strings.ToLower(trimmed)
	for _, h := range lowerHeaders {
		if strings.Contains(lowered, h) {
			return true
		}
	}
	return false
}

// stopPattern matches a line that is exactly one of the known headers not
// requested by the caller, with optional surrounding whitespace and a
// trailing colon.
func stopPattern(requested []string) *regexp.Regexp {
	isRequested := func(name string) bool {
		for _, r := range requested {
			if strings.Contains(name, r) || strings.Contains(r, name) {
				return true
			}
		}
		return false
	}
	var alternatives []string
	for _, name := range knownSectionHeaders {
		if isRequested(name) {
			continue
		}
		alternatives = append(alternatives, regexp.QuoteMeta(name))
	}
	if len(alternatives) == 0 {
		return regexp.MustCompile(`$a`) // never matches
	}
	return regexp.MustCompile(`(?i)^\s*(` + strings.Join(alternatives, "|") + `)\s*:?\s*$`)
}
