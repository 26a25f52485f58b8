package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/temirov/audittags/internal/extraction"
)

const (
	jsonIndentConstant                = "    "
	jsonEncodingErrorTemplateConstant = "failed to encode JSON report: %w"
)

// RenderJSON serializes records as an indented JSON array. An empty sequence
// renders as "[]".
func RenderJSON(records []extraction.Record) ([]byte, error) {
	serializable := records
	if serializable == nil {
		serializable = []extraction.Record{}
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndentConstant)
	if encodeError := encoder.Encode(serializable); encodeError != nil {
		return nil, fmt.Errorf(jsonEncodingErrorTemplateConstant, encodeError)
	}

	return buffer.Bytes(), nil
}
