package llm

import (
	"fmt"
	"strings"
)

const compareSchemaDescription = `{
  "match_score": <integer 0-100>,
  "keywords": {
    "hard_skills": [{"term": "<skill>", "matched": <bool>}],
    "soft_skills": [{"term": "<skill>", "matched": <bool>}]
  },
  "ats_checks": [{"check_name": "<name>", "status": "pass|fail|warning", "message": "<detail>"}],
  "suggestions": ["<actionable improvement>"],
  "advanced_criteria": [{"name": "<criterion>", "status": "matched|partial|missing", "description": "<detail>"}],
  "section_analysis": {"education": "<assessment>", "experience": "<assessment>", "skills": "<assessment>", "projects": "<assessment>"}
}`

const parseSchemaDescription = `{
  "summary": "<professional summary>",
  "experiences": [{
    "company_name": "<employer>",
    "job_title": "<title>",
    "state": "<state or region>",
    "country": "<country>",
    "start_date": "<Month YYYY>",
    "end_date": "<Month YYYY or Present>",
    "responsibilities_text": "<what they did>",
    "skills_tools_used": ["<skill>"]
  }],
  "education": [{
    "institute_name": "<school>",
    "course_certification_name": "<degree or certification>",
    "start_date": "<Month YYYY>",
    "end_date": "<Month YYYY or Present>"
  }],
  "contact_details": {"full_name": "", "email": "", "phone": "", "linkedin": "", "whatsapp": ""},
  "skills": ["<skill>"]
}`

// BuildComparePrompt embeds both documents plus a strict schema description.
// Providers that support a JSON response mode should still enable it; the
// prompt-level instruction is the portable part.
func BuildComparePrompt(in CompareInput) string {
	var b strings.Builder
	b.WriteString("You are an expert technical recruiter and ATS analyst. ")
	b.WriteString("Compare the resume below against the job description and score how well they match.\n\n")
	b.WriteString("RESUME:\n")
	b.WriteString(in.ResumeText)
	b.WriteString("\n\nJOB DESCRIPTION:\n")
	b.WriteString(in.JobText)
	b.WriteString("\n\nRespond with ONLY a JSON object in exactly this shape, no markdown and no commentary:\n")
	b.WriteString(compareSchemaDescription)
	b.WriteString("\nUse only skills that actually appear in the job description for the keywords lists. ")
	b.WriteString("Ground every ats_check message in the documents above.")
	return b.String()
}

// BuildParsePrompt asks the model to extract structured resume data.
func BuildParsePrompt(resumeText string) string {
	return fmt.Sprintf(
		"You are a resume parser. Extract structured data from the resume below.\n\nRESUME:\n%s\n\nRespond with ONLY a JSON object in exactly this shape, no markdown and no commentary:\n%s\nUse null for fields you cannot find. Do not invent employers, titles, or institutions that are not present in the text.",
		resumeText, parseSchemaDescription,
	)
}
