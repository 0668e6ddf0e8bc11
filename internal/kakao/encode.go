package kakao

import (
	"bytes"
	"encoding/json"
)

// encode marshals v compactly without HTML escaping, so "<", ">" and "&" in
// labels and URLs reach the platform literally. Non-ASCII text is never escaped,
// U+2028 and U+2029 included.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

var (
	escapedLS = []byte(`\u2028`)
	escapedPS = []byte(`\u2029`)
)

// unescapeLineSeparators turns the \u2028 and \u2029 escapes written by
// encoding/json back into raw UTF-8. Escape sequences are consumed left to
// right, so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, escapedLS) && !bytes.Contains(b, escapedPS) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch rest := b[i:]; {
		case bytes.HasPrefix(rest, escapedLS):
			out = append(out, "\u2028"...)
			i += len(escapedLS) - 1
		case bytes.HasPrefix(rest, escapedPS):
			out = append(out, "\u2029"...)
			i += len(escapedPS) - 1
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}

// wrap produces {"<tag>":<body>}.
func wrap(tag string, body []byte) []byte {
	out := make([]byte, 0, len(tag)+len(body)+5)
	out = append(out, `{"`...)
	out = append(out, tag...)
	out = append(out, `":`...)
	out = append(out, body...)
	out = append(out, '}')
	return out
}

// ptr returns a pointer to v. Optional fields are pointers so an explicitly set
// zero value stays distinguishable from an unset field.
func ptr[T any](v T) *T {
	return &v
}
