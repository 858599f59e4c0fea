package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// ErrNotTabular is returned by JSONToTable for documents with no table shape.
var ErrNotTabular = errors.New("document cannot be rendered as a table")

// TableRenderer is implemented by types that can render themselves as a table.
type TableRenderer interface {
	// Headers returns the column headers for the table.
	Headers() []string
	// Rows returns the data rows for the table.
	Rows() [][]string
}

// PrintTable writes data as a formatted table to the writer.
func PrintTable(w io.Writer, data TableRenderer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())

	// Configure table style for clean output
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range data.Rows() {
		table.Append(row)
	}

	table.Render()
	return nil
}

// TableData is a simple implementation of TableRenderer for ad-hoc tables.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData creates a new TableData with the given headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{
		headers: headers,
		rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *TableData) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Headers implements TableRenderer.
func (t *TableData) Headers() []string {
	return t.headers
}

// Rows implements TableRenderer.
func (t *TableData) Rows() [][]string {
	return t.rows
}

// SimpleTable prints key/value pairs as a two-column KEY/VALUE table.
func SimpleTable(w io.Writer, pairs [][2]string) error {
	table := NewTableData("Key", "Value")
	for _, pair := range pairs {
		table.AddRow(pair[0], pair[1])
	}
	return PrintTable(w, table)
}

// JSONToTable renders a JSON document as a table. An array of objects
// becomes one row per element with the union of keys as columns, an object
// becomes key/value pairs. Other documents return ErrNotTabular.
func JSONToTable(w io.Writer, body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch v := doc.(type) {
	case map[string]any:
		keys := sortedKeys(v)
		pairs := make([][2]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, [2]string{k, cell(v[k])})
		}
		return SimpleTable(w, pairs)
	case []any:
		rows := make([]map[string]any, 0, len(v))
		columns := map[string]any{}
		for _, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return ErrNotTabular
			}
			for k := range obj {
				columns[k] = nil
			}
			rows = append(rows, obj)
		}

		table := NewTableData(sortedKeys(columns)...)
		for _, obj := range rows {
			row := make([]string, 0, len(table.headers))
			for _, col := range table.headers {
				val, ok := obj[col]
				if !ok {
					row = append(row, "")
					continue
				}
				row = append(row, cell(val))
			}
			table.AddRow(row...)
		}
		return PrintTable(w, table)
	default:
		return ErrNotTabular
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cell formats a JSON value for a table cell. Nested values stay compact JSON.
func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
