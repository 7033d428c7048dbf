package resumes

import (
	"encoding/json"
	"strings"
	"time"
)

// NullString decodes a JSON string and treats any other token (number,
// object, null) as absent. Model output is not trusted to respect types.
type NullString struct {
	Val *string
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		n.Val = nil
		return nil
	}
	n.Val = &s
	return nil
}

func (n NullString) MarshalJSON() ([]byte, error) {
	if n.Val == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Val)
}

// String returns the value or "" when absent.
func (n NullString) String() string {
	if n.Val == nil {
		return ""
	}
	return *n.Val
}

// Present reports whether a non-blank value is set.
func (n NullString) Present() bool {
	return n.Val != nil && strings.TrimSpace(*n.Val) != ""
}

func NewNullString(s string) NullString {
	return NullString{Val: &s}
}

// StringList decodes either a JSON array of strings or a single
// comma-separated string; anything else decodes as empty. Elements are
// trimmed and blanks dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []any
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = nil
		for _, item := range arr {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					*l = append(*l, trimmed)
				}
			}
		}
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = splitAndTrim(single)
		return nil
	}
	*l = nil
	return nil
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type Experience struct {
	CompanyName          NullString `json:"company_name"`
	JobTitle             NullString `json:"job_title"`
	State                string     `json:"state,omitempty"`
	Country              string     `json:"country,omitempty"`
	StartDate            string     `json:"start_date,omitempty"`
	EndDate              string     `json:"end_date,omitempty"`
	ResponsibilitiesText string     `json:"responsibilities_text,omitempty"`
	SkillsToolsUsed      StringList `json:"skills_tools_used"`
}

type Education struct {
	InstituteName           NullString `json:"institute_name"`
	CourseCertificationName NullString `json:"course_certification_name"`
	StartDate               string     `json:"start_date,omitempty"`
	EndDate                 string     `json:"end_date,omitempty"`
}

type ContactDetails struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// ParsedResumeData is the structured form of a resume, produced by the model
// parser and cleaned by the validator and normalizer.
type ParsedResumeData struct {
	Summary        string         `json:"summary,omitempty"`
	Experiences    []Experience   `json:"experiences"`
	Education      []Education    `json:"education"`
	ContactDetails ContactDetails `json:"contact_details"`
	Skills         StringList     `json:"skills"`
}

// Resume is a persisted builder document.
type Resume struct {
	ID        string           `json:"id"`
	UserID    string           `json:"-"`
	Title     string           `json:"title"`
	Data      ParsedResumeData `json:"data"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
