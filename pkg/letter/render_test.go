package letter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resignly/pkg/letter"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		mutate   func(*letter.Data)
		want     string
	}{
		{
			name:     "replaces identity fields",
			template: "Dear {{supervisorName}}, I am {{employeeName}} from {{companyName}}.",
			want:     "Dear Jane Smith, I am John Doe from Tech Corp.",
		},
		{
			name:     "falls back to bracketed labels",
			template: "Dear {{supervisorName}}, I am {{employeeName}}, {{employeePosition}} at {{companyName}}.",
			mutate: func(d *letter.Data) {
				d.EmployeeName, d.SupervisorName, d.EmployeePosition, d.CompanyName = "", " ", "", ""
			},
			want: "Dear [Supervisor Name], I am [Your Name], [Your Position] at [Company Name].",
		},
		{
			name:     "formats dates",
			template: "My last day will be {{lastWorkingDate}}, effective {{resignationDate}}.",
			want:     "My last day will be February 15, 2025, effective February 1, 2025.",
		},
		{
			name:     "missing last working date",
			template: "Last day: {{lastWorkingDate}}",
			mutate:   func(d *letter.Data) { d.LastWorkingDate = "" },
			want:     "Last day: [Last Working Date]",
		},
		{
			name:     "missing resignation date defaults to today",
			template: "Effective {{resignationDate}}",
			mutate:   func(d *letter.Data) { d.ResignationDate = "" },
			want:     "Effective January 20, 2025",
		},
		{
			name:     "reason block kept",
			template: "{{#if reason}}Reason: {{reason}}{{/if}}",
			want:     "Reason: Career advancement",
		},
		{
			name:     "reason block removed",
			template: "{{#if reason}}Reason: {{reason}}{{/if}}",
			mutate:   func(d *letter.Data) { d.Reason = "" },
			want:     "",
		},
		{
			name:     "whitespace-only reason is blank",
			template: "{{#if reason}}Reason: {{reason}}{{/if}}",
			mutate:   func(d *letter.Data) { d.Reason = "  \n " },
			want:     "",
		},
		{
			name:     "custom message block",
			template: "{{#if customMessage}}{{customMessage}}{{/if}}",
			want:     "Thank you for everything",
		},
		{
			name:     "block content trimmed of template whitespace",
			template: "A\n\n{{#if reason}}\n{{reason}}\n{{/if}}\n\nB",
			want:     "A\n\nCareer advancement\n\nB",
		},
		{
			name:     "removed block takes its blank line with it",
			template: "A\n\n{{#if reason}}\n{{reason}}\n{{/if}}\n\nB",
			mutate:   func(d *letter.Data) { d.Reason = "" },
			want:     "A\n\nB",
		},
		{
			name:     "removed block at the start",
			template: "{{#if reason}}\n{{reason}}\n{{/if}}\n\nB",
			mutate:   func(d *letter.Data) { d.Reason = "" },
			want:     "B",
		},
		{
			name:     "removed block at the end",
			template: "A\n\n{{#if customMessage}}\n{{customMessage}}\n{{/if}}",
			mutate:   func(d *letter.Data) { d.CustomMessage = "" },
			want:     "A",
		},
		{
			name:     "inline removed block keeps the line",
			template: "I am leaving{{#if reason}} because {{reason}}{{/if}}.",
			mutate:   func(d *letter.Data) { d.Reason = "" },
			want:     "I am leaving.",
		},
		{
			name:     "bare optional tokens outside blocks",
			template: "[{{reason}}] [{{customMessage}}]",
			mutate:   func(d *letter.Data) { d.CustomMessage = "" },
			want:     "[Career advancement] []",
		},
		{
			name:     "optional values are inserted raw",
			template: "{{#if reason}}{{reason}}{{/if}}",
			mutate:   func(d *letter.Data) { d.Reason = "  spaced  " },
			want:     "  spaced  ",
		},
		{
			name:     "identity values are inserted raw",
			template: "Dear {{supervisorName}},",
			mutate:   func(d *letter.Data) { d.SupervisorName = "  Bob  " },
			want:     "Dear   Bob  ,",
		},
		{
			name:     "blank identity value uses the fallback",
			template: "Dear {{supervisorName}},",
			mutate:   func(d *letter.Data) { d.SupervisorName = " \t " },
			want:     "Dear [Supervisor Name],",
		},
		{
			name:     "unknown identifiers stay literal",
			template: "Hello {{nickname}} {{ employeeName }}",
			want:     "Hello {{nickname}} {{ employeeName }}",
		},
		{
			name:     "conditional on unknown field stays literal",
			template: "{{#if salary}}x{{/if}}",
			want:     "{{#if salary}}x{{/if}}",
		},
		{
			name:     "stray closing tag stays literal",
			template: "done{{/if}}",
			want:     "done{{/if}}",
		},
		{
			name:     "unclosed conditional stays literal",
			template: "{{#if reason}}Reason: {{reason}}",
			want:     "{{#if reason}}Reason: Career advancement",
		},
		{
			name:     "unterminated tag stays literal",
			template: "Hi {{employeeName",
			want:     "Hi {{employeeName",
		},
		{
			name:     "extra braces before a tag",
			template: "{{{{employeeName}}",
			want:     "{{John Doe",
		},
		{
			name:     "nested conditionals evaluate independently",
			template: "{{#if reason}}R={{reason}}{{#if customMessage}}; M={{customMessage}}{{/if}}{{/if}}",
			mutate:   func(d *letter.Data) { d.CustomMessage = "" },
			want:     "R=Career advancement",
		},
		{
			name:     "conditional on identity field",
			template: "{{#if companyName}}at {{companyName}}{{/if}}",
			want:     "at Tech Corp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := sampleData()
			if tt.mutate != nil {
				tt.mutate(&data)
			}
			assert.Equal(t, tt.want, letter.Render(tt.template, data, pinned()...))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	body := "Dear {{supervisorName}},\n\n{{#if reason}}\n{{reason}}\n{{/if}}\n\nEffective {{resignationDate}}"
	data := sampleData()
	data.ResignationDate = ""

	first := letter.Render(body, data, pinned()...)
	for range 10 {
		assert.Equal(t, first, letter.Render(body, data, pinned()...))
	}
}

func TestRender_StripsMarkerFromInput(t *testing.T) {
	t.Parallel()

	data := sampleData()
	data.Reason = "a\x00b"
	assert.Equal(t, "ab", letter.Render("{{reason}}", data, pinned()...))
}

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("word count", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 10, letter.WordCount("This is a test letter with exactly ten words in total."))
		assert.Equal(t, 2, letter.WordCount("  a   b  "))
		assert.Equal(t, 4, letter.WordCount("  This   has   extra   spaces  "))
		assert.Equal(t, 0, letter.WordCount(""))
		assert.Equal(t, 0, letter.WordCount(" \n\t "))
	})

	t.Run("character count", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 5, letter.CharCount("Hello"))
		assert.Equal(t, 13, letter.CharCount("Hello, world!"))
		assert.Equal(t, 4, letter.CharCount("café"))
	})

	t.Run("reading time", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1, letter.ReadingTime(strings.Repeat("word ", 225)))
		assert.Equal(t, 2, letter.ReadingTime(strings.Repeat("word ", 300)))
		assert.Equal(t, 1, letter.ReadingTime("word"))
		assert.Equal(t, 0, letter.ReadingTime(""))
	})

	t.Run("stats of", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, letter.Stats{Words: 2, Characters: 11, ReadingTime: 1}, letter.StatsOf("Hello world"))
	})
}
