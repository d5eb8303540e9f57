// Package jsonld builds schema.org structured data and renders it safely
// inside HTML script elements.
package jsonld

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Context is the vocabulary marker carried by every root document.
const Context = "https://schema.org"

// Document is one schema.org node. Root documents carry "@context"; nested
// nodes only carry "@type".
type Document map[string]any

// Type returns the document's "@type" tag.
func (d Document) Type() string {
	t, _ := d["@type"].(string)
	return t
}

// WithContext returns a shallow copy of doc marked as a schema.org root.
func WithContext(doc Document) Document {
	out := make(Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	out["@context"] = Context
	return out
}

// ErrMissingField is matched by every ValidationError.
var ErrMissingField = errors.New("missing required field")

// ValidationError reports a required schema field the caller left empty.
type ValidationError struct {
	Type  string
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("jsonld: %s requires %s", e.Type, e.Field)
}

func (e *ValidationError) Is(target error) bool { return target == ErrMissingField }

var scriptEscaper = strings.NewReplacer(
	"<", `\u003c`,
	">", `\u003e`,
	"&", `\u0026`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// Sanitize serializes v to JSON that can be placed verbatim inside a
// <script> element. Escaping is applied to the serialized text.
func Sanitize(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("jsonld: encode: %w", err)
	}
	return scriptEscaper.Replace(strings.TrimSuffix(buf.String(), "\n")), nil
}

// Script renders each document as an application/ld+json script element.
func Script(docs ...Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, doc := range docs {
			body, err := Sanitize(doc)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<script type="application/ld+json">`+body+"</script>\n"); err != nil {
				return err
			}
		}
		return nil
	})
}
