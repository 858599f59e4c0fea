package output

import (
	"bytes"
	"encoding/json"
)

// PrintBody renders a response body in the printer's format. Bodies that are
// not JSON, or that do not fit the format, are printed as indented JSON or
// raw text.
func (p *Printer) PrintBody(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return PrintRaw(p.out, body)
	}

	switch p.format {
	case FormatYAML:
		var buf bytes.Buffer
		if err := JSONToYAML(&buf, trimmed); err == nil {
			_, err = p.out.Write(buf.Bytes())
			return err
		}
	case FormatTable:
		var buf bytes.Buffer
		if err := JSONToTable(&buf, trimmed); err == nil {
			_, err = p.out.Write(buf.Bytes())
			return err
		}
	}

	pretty, _ := PrettyJSON(trimmed)
	_, err := p.out.Write(pretty)
	return err
}
