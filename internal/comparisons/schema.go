package comparisons

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed match_report_schema.json
var matchReportSchemaJSON []byte

var matchReportSchema = gojsonschema.NewBytesLoader(matchReportSchemaJSON)

// ParseReport validates raw model output against the report schema and
// decodes it. Any failure is wrapped in ErrInvalidModelResponse so the
// caller can degrade to the fallback scorer.
func ParseReport(raw json.RawMessage) (Report, error) {
	if len(raw) == 0 {
		return Report{}, fmt.Errorf("empty payload: %w", ErrInvalidModelResponse)
	}
	result, err := gojsonschema.Validate(matchReportSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Report{}, fmt.Errorf("%v: %w", err, ErrInvalidModelResponse)
	}
	if !result.Valid() {
		return Report{}, fmt.Errorf("%s: %w", formatSchemaErrors(result), ErrInvalidModelResponse)
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return Report{}, fmt.Errorf("%v: %w", err, ErrInvalidModelResponse)
	}
	return report, nil
}

func formatSchemaErrors(result *gojsonschema.Result) string {
	parts := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		parts = append(parts, desc.String())
	}
	return strings.Join(parts, "; ")
}
