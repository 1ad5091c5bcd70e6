package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Library is an insertion-ordered mapping from prompt name to template text.
// Order is preserved through JSON round-trips so the backing file stays
// stable across edits.
type Library struct {
	names     []string
	templates map[string]string
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{templates: map[string]string{}}
}

// Get returns the template for name and whether it exists.
func (l *Library) Get(name string) (string, bool) {
	t, ok := l.templates[name]
	return t, ok
}

// Names returns the prompt names in stored order.
func (l *Library) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of prompts.
func (l *Library) Len() int {
	return len(l.names)
}

// Set inserts or overwrites the template for name. Updates keep the name's
// position; new names are appended.
func (l *Library) Set(name, template string) {
	if _, ok := l.templates[name]; !ok {
		l.names = append(l.names, name)
	}
	l.templates[name] = template
}

// MarshalJSON encodes the library as a JSON object with two-space
// indentation, keys in stored order. Template text is kept verbatim, with
// no HTML escaping of <, > or &. Note that running the result through
// json.Marshal again compacts and re-escapes it; callers that need the
// pretty form must use this method directly.
func (l *Library) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range l.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		key, err := encodeString(name)
		if err != nil {
			return nil, err
		}
		val, err := encodeString(l.templates[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(l.names) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a JSON object of string values, preserving key order.
func (l *Library) UnmarshalJSON(data []byte) error {
	l.names = nil
	l.templates = map[string]string{}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}

		var template string
		if err := dec.Decode(&template); err != nil {
			return fmt.Errorf("prompt %q: template must be a string: %v", name, err)
		}
		l.Set(name, template)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
