// internal/api/types/response.go
package types

// Kind discriminates the two result shapes a handler may return. The
// normalizer switches on this tag, never on structural field presence, so a
// JSON payload that happens to carry an "html" field stays unambiguous.
type Kind int

const (
	KindJSON Kind = iota
	KindHTML
)

// Result is the abstract outcome of a handler. KindJSON results are wrapped
// in the wire envelope; KindHTML results are emitted verbatim with an HTML
// content type and no envelope.
type Result struct {
	Kind    Kind
	Status  int // 0 means 200
	Message string
	Data    any
	HTML    string
}

// JSON builds a JSON-kind result.
func JSON(status int, message string, data any) *Result {
	return &Result{
		Kind:    KindJSON,
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// HTML builds an HTML-kind result.
func HTML(status int, html string) *Result {
	return &Result{
		Kind:   KindHTML,
		Status: status,
		HTML:   html,
	}
}

// Envelope is the uniform wire shape shared by every JSON response.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
