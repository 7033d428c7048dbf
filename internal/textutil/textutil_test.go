package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world 42", Normalize("  Hello, WORLD!  42 "))
	assert.Equal(t, "", Normalize("!!! ---"))
	assert.Equal(t, "c and go", Normalize("C++ and Go"))
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", ExtractEmail("Contact: jane.doe@example.com / 555"))
	assert.Equal(t, "a+b@sub.domain.io", ExtractEmail("mail a+b@sub.domain.io now"))
	assert.Equal(t, "", ExtractEmail("no email here"))
}

func TestExtractPhone(t *testing.T) {
	cases := map[string]string{
		"call (555) 123-4567 today": "(555) 123-4567",
		"intl +44 555 123 4567":     "+44 555 123 4567",
		"dots 555.123.4567":         "555.123.4567",
		"nothing to see":            "",
	}
	for input, want := range cases {
		assert.Equal(t, want, ExtractPhone(input), "input %q", input)
	}
}

func TestExtractSectionStopsAtNextHeader(t *testing.T) {
	text := "John Doe\nSkills\nGo\nPostgres\nDocker\nEducation\nBS Computer Science"
	body, ok := ExtractSection(text, []string{"skills"})
	assert.True(t, ok)
	assert.Equal(t, "Go\nPostgres\nDocker", body)
}

func TestExtractSectionHeaderWithColon(t *testing.T) {
	text := "Experience:\nAcme Corp, Engineer\nShipped things\nSkills:\nGo"
	body, ok := ExtractSection(text, []string{"experience"})
	assert.True(t, ok)
	assert.Equal(t, "Acme Corp, Engineer\nShipped things", body)
}

func TestExtractSectionMissing(t *testing.T) {
	_, ok := ExtractSection("just a plain paragraph of text", []string{"projects"})
	assert.False(t, ok)
}

func TestExtractSectionLongLineIsNotAHeader(t *testing.T) {
	long := "my skills include communication leadership and many other things beyond fifty chars"
	text := long + "\nGo\nEducation\nBS"
	_, ok := ExtractSection(text, []string{"skills"})
	assert.False(t, ok)
}

func TestExtractSectionRunsToEndOfText(t *testing.T) {
	text := "Projects\nbuilt a compiler\nbuilt a kernel"
	body, ok := ExtractSection(text, []string{"projects"})
	assert.True(t, ok)
	assert.Equal(t, "built a compiler\nbuilt a kernel", body)
}
