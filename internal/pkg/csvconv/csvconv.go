// Package csvconv turns a JSON document (an object or an array of flat
// objects) into CSV text. Column order follows the order keys first
// appear in the document, matching what callers see in their payload.
package csvconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"ferias-api/internal/pkg/errs"
)

var (
	ErrInvalidShape = errs.New("input must be an object or an array of objects")
	ErrEmptyInput   = errs.New("input has no rows")
)

type row struct {
	keys   []string
	values map[string]json.RawMessage
}

// Convert renders the JSON document as CSV with a header row.
func Convert(data []byte) (string, error) {
	rows, err := parseRows(data)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrEmptyInput
	}

	// Header: first-seen key order across all rows.
	var columns []string
	seen := make(map[string]struct{})
	for _, r := range rows {
		for _, k := range r.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			columns = append(columns, k)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return "", errs.Wrap(err, "failed to write csv header")
	}

	record := make([]string, len(columns))
	for _, r := range rows {
		for i, col := range columns {
			record[i] = formatCell(r.values[col])
		}
		if err := w.Write(record); err != nil {
			return "", errs.Wrap(err, "failed to write csv record")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errs.Wrap(err, "failed to flush csv")
	}
	return buf.String(), nil
}

func parseRows(data []byte) ([]row, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	switch trimmed[0] {
	case '{':
		r, err := parseObject(trimmed)
		if err != nil {
			return nil, err
		}
		return []row{r}, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, errs.Mark(err, ErrInvalidShape)
		}
		rows := make([]row, 0, len(elems))
		for _, elem := range elems {
			r, err := parseObject(bytes.TrimSpace(elem))
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return rows, nil
	default:
		return nil, ErrInvalidShape
	}
}

// parseObject walks the object token by token so key order is preserved;
// json.Unmarshal into a map would lose it.
func parseObject(raw []byte) (row, error) {
	if len(raw) == 0 || raw[0] != '{' {
		return row{}, ErrInvalidShape
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return row{}, errs.Mark(err, ErrInvalidShape)
	}

	r := row{values: make(map[string]json.RawMessage)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return row{}, errs.Mark(err, ErrInvalidShape)
		}
		key, ok := keyTok.(string)
		if !ok {
			return row{}, ErrInvalidShape
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return row{}, errs.Mark(err, ErrInvalidShape)
		}

		if _, dup := r.values[key]; !dup {
			r.keys = append(r.keys, key)
		}
		r.values[key] = val
	}

	return r, nil
}

func formatCell(val json.RawMessage) string {
	v := bytes.TrimSpace(val)
	if len(v) == 0 || string(v) == "null" {
		return ""
	}

	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return string(v)
		}
		return s
	case '{', '[':
		// nested values are re-encoded as compact JSON text
		var compact bytes.Buffer
		if err := json.Compact(&compact, v); err != nil {
			return string(v)
		}
		return compact.String()
	default:
		// numbers and booleans keep their literal form
		return strings.TrimSpace(string(v))
	}
}
