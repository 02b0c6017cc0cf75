package fieldmap

import (
	"encoding/json"
	"io"
	"log"
	"regexp"
	"strings"

	"sheetex/internal/errors"
)

// whitespaceRE collapses runs of whitespace, including non-breaking space,
// so pasted mapping JSON survives spreadsheet/chat round-trips.
var whitespaceRE = regexp.MustCompile(`[\s\x{00A0}]+`)

// Field is one source-column to output-alias association.
type Field struct {
	Source string
	Alias  string
}

// Mapping is an ordered field mapping. Order is the key order of the JSON
// object it was parsed from; Go maps don't preserve that, so the order is
// kept explicitly.
type Mapping struct {
	fields []Field
	index  map[string]int
}

// Len returns the number of mapped fields.
func (m *Mapping) Len() int {
	return len(m.fields)
}

// Fields returns the mapped fields in their original order.
func (m *Mapping) Fields() []Field {
	return m.fields
}

// Alias returns the output alias for a source column, if mapped.
func (m *Mapping) Alias(source string) (string, bool) {
	i, ok := m.index[source]
	if !ok {
		return "", false
	}
	return m.fields[i].Alias, true
}

// Sources returns the source column names in mapping order.
func (m *Mapping) Sources() []string {
	out := make([]string, len(m.fields))
	for i, f := range m.fields {
		out[i] = f.Source
	}
	return out
}

// Parse validates a table_fields JSON object and returns the mapping.
// Keys and values must be non-empty strings after trimming; duplicate keys
// keep their first position and take the last alias, matching JSON object
// semantics.
func Parse(raw string) (*Mapping, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.InvalidInput("empty table_fields input")
	}

	normalized := strings.TrimSpace(whitespaceRE.ReplaceAllString(raw, " "))
	log.Printf("[fieldmap] processing table_fields JSON: %s", normalized)

	dec := json.NewDecoder(strings.NewReader(normalized))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.InvalidInputf("invalid JSON format: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.InvalidInput("table_fields must be a JSON object")
	}

	m := &Mapping{index: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.InvalidInputf("invalid JSON format: %v", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.InvalidInputf("invalid field: %v", keyTok)
		}

		var rawValue json.RawMessage
		if err := dec.Decode(&rawValue); err != nil {
			return nil, errors.InvalidInputf("invalid JSON format: %v", err)
		}
		var alias string
		if err := json.Unmarshal(rawValue, &alias); err != nil {
			return nil, errors.InvalidInputf("invalid alias for %q: %s", key, string(rawValue))
		}

		key = strings.TrimSpace(key)
		alias = strings.TrimSpace(alias)
		if key == "" {
			return nil, errors.InvalidInputf("invalid field: %q", keyTok)
		}
		if alias == "" {
			return nil, errors.InvalidInputf("invalid alias for %q: %q", key, alias)
		}

		if i, exists := m.index[key]; exists {
			m.fields[i].Alias = alias
			continue
		}
		m.index[key] = len(m.fields)
		m.fields = append(m.fields, Field{Source: key, Alias: alias})
	}

	// Consume the closing brace and make sure nothing trails the object.
	if _, err := dec.Token(); err != nil {
		return nil, errors.InvalidInputf("invalid JSON format: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.InvalidInput("invalid JSON format: trailing data after object")
	}

	log.Printf("[fieldmap] parsed %d field mappings", m.Len())
	return m, nil
}
