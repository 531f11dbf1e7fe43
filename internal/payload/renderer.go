// Package payload renders JSON request bodies from templates with {{name}} placeholders.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// Error represents a payload rendering failure
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTemplateRead    = "TEMPLATE_READ"
	ErrCodeTemplateParse   = "TEMPLATE_PARSE"
	ErrCodeTemplateRender  = "TEMPLATE_RENDER"
	ErrCodeInvalidJSONBody = "INVALID_JSON_BODY"
)

// IsErrorCode checks if an error is a payload Error with a specific code
func IsErrorCode(err error, code string) bool {
	var payloadErr *Error
	if errors.As(err, &payloadErr) {
		return payloadErr.Code == code
	}
	return false
}

// Renderer substitutes placeholder values into templates.
// Missing placeholders render as empty text. String values are JSON-escaped so a
// placeholder written inside quotes stays a valid JSON string.
// Failures are returned, not logged; the logger only records successful renders at debug.
type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// RenderFile reads the template at path and renders it with values.
func (r *Renderer) RenderFile(path string, values map[string]any) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Code: ErrCodeTemplateRead, Message: "read template " + path, Err: err}
	}
	return r.Render(string(raw), values)
}

// Render substitutes values into an in-memory template.
func (r *Renderer) Render(template string, values map[string]any) (string, error) {
	t, err := fasttemplate.NewTemplate(template, startTag, endTag)
	if err != nil {
		return "", &Error{Code: ErrCodeTemplateParse, Message: "parse template", Err: err}
	}

	out, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		value, ok := values[strings.TrimSpace(tag)]
		if !ok || value == nil {
			return 0, nil
		}
		text, err := formatValue(value)
		if err != nil {
			return 0, fmt.Errorf("placeholder %q: %w", strings.TrimSpace(tag), err)
		}
		return w.Write([]byte(text))
	})
	if err != nil {
		return "", &Error{Code: ErrCodeTemplateRender, Message: "render template", Err: err}
	}
	r.logger.Debug("rendered payload template", "bytes", len(out))
	return out, nil
}

// RenderJSON renders like Render and then checks the result is valid JSON.
func (r *Renderer) RenderJSON(template string, values map[string]any) (string, error) {
	out, err := r.Render(template, values)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(out)) {
		return "", &Error{Code: ErrCodeInvalidJSONBody, Message: "rendered payload is not valid JSON"}
	}
	return out, nil
}

// RenderJSONFile is RenderFile followed by the RenderJSON validity check.
func (r *Renderer) RenderJSONFile(path string, values map[string]any) (string, error) {
	out, err := r.RenderFile(path, values)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(out)) {
		return "", &Error{Code: ErrCodeInvalidJSONBody, Message: "rendered payload is not valid JSON: " + path}
	}
	return out, nil
}

func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return escapeJSONString(v)
	case []byte:
		return escapeJSONString(string(v))
	case fmt.Stringer:
		return escapeJSONString(v.String())
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	default:
		// structs, maps and slices are embedded as JSON values
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func escapeJSONString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	// drop the surrounding quotes; the template supplies them
	return string(b[1 : len(b)-1]), nil
}
