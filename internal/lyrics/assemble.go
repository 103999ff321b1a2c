package lyrics

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Assemble projects the word sequence into the serializable document: line
// texts grouped by index, totals, and optional sections. It is a pure
// aggregation with no business logic; an empty word sequence yields a
// well-formed empty document.
func Assemble(words []WordRecord, sections []Section) Document {
	if words == nil {
		words = []WordRecord{}
	}
	grouped := make(map[int][]string)
	for _, w := range words {
		grouped[w.Line] = append(grouped[w.Line], w.Word)
	}
	lines := make(map[string]string, len(grouped))
	for idx, parts := range grouped {
		lines[strconv.Itoa(idx)] = strings.Join(parts, " ")
	}
	return Document{
		Words:      words,
		Lines:      lines,
		Sections:   sections,
		TotalWords: len(words),
		TotalLines: len(lines),
	}
}

// Encode renders the document as human-readable UTF-8 JSON.
func (d Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
