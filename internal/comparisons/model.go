package comparisons

import (
	"encoding/json"
	"time"
)

// Comparison is the persisted record of one compare request.
type Comparison struct {
	ID             string          `json:"id"`
	UserID         string          `json:"-"`
	JobDescription string          `json:"job_description"`
	ResumeChars    int             `json:"resume_chars"`
	Source         string          `json:"source"`
	MatchScore     int             `json:"match_score"`
	Result         json.RawMessage `json:"result"`
	Provider       string          `json:"provider"`
	Model          string          `json:"model"`
	CreatedAt      time.Time       `json:"created_at"`
}
