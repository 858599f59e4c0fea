package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintYAML(t *testing.T) {
	data := struct {
		Name  string `yaml:"name"`
		Value int    `yaml:"value"`
	}{
		Name:  "test",
		Value: 42,
	}

	var buf bytes.Buffer
	err := PrintYAML(&buf, data)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "name: test")
	assert.Contains(t, output, "value: 42")
}

func TestPrintYAMLArray(t *testing.T) {
	data := []struct {
		Name string `yaml:"name"`
	}{
		{Name: "a"},
		{Name: "b"},
	}

	var buf bytes.Buffer
	err := PrintYAML(&buf, data)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "- name: a")
	assert.Contains(t, output, "- name: b")
}

func TestJSONToYAML(t *testing.T) {
	var buf bytes.Buffer
	err := JSONToYAML(&buf, []byte(`{"name":"ann","id":"7","tags":["a","b"],"age":30}`))
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "name: ann\n"), output)
	assert.Contains(t, output, `id: "7"`)
	assert.Contains(t, output, "- a\n")
	assert.Contains(t, output, "age: 30\n")
	assert.NotContains(t, output, "{")
}

func TestJSONToYAML_Invalid(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, JSONToYAML(&buf, []byte("{")))
}
