package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBody(t *testing.T) {
	body := []byte(`[{"id":1,"name":"ann"}]`)

	tests := []struct {
		name     string
		format   Format
		body     []byte
		contains []string
	}{
		{
			name:     "json indents",
			format:   FormatJSON,
			body:     body,
			contains: []string{"[\n  {\n    \"id\": 1,\n    \"name\": \"ann\"\n  }\n]\n"},
		},
		{
			name:     "yaml",
			format:   FormatYAML,
			body:     body,
			contains: []string{"- id: 1\n", "name: ann\n"},
		},
		{
			name:     "table",
			format:   FormatTable,
			body:     body,
			contains: []string{"ID", "NAME", "ann"},
		},
		{
			name:     "table falls back to json for scalars",
			format:   FormatTable,
			body:     []byte(`42`),
			contains: []string{"42\n"},
		},
		{
			name:     "non json printed raw",
			format:   FormatJSON,
			body:     []byte("Internal Server Error"),
			contains: []string{"Internal Server Error\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, tt.format, false).PrintBody(tt.body))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
