package field

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sink receives the resolved error message for a field. An empty message
// means the field is valid.
type Sink interface {
	SetMessage(msg string)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(msg string)

// SetMessage delegates to the underlying function.
func (fn SinkFunc) SetMessage(msg string) { fn(msg) }

// MemorySink keeps the last message written to it.
type MemorySink struct {
	message string
	writes  int
}

// SetMessage stores msg.
func (s *MemorySink) SetMessage(msg string) {
	s.message = msg
	s.writes++
}

// Message returns the last message written.
func (s *MemorySink) Message() string { return s.message }

// Writes returns how many times the sink was written.
func (s *MemorySink) Writes() int { return s.writes }

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

func messageSanitizer() *bluemonday.Policy {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return messagePolicy
}

// HTMLSink holds the message as markup-safe text. Native messages may echo
// the user's value, so markup is stripped before it reaches a page.
type HTMLSink struct {
	fieldID string
	text    string
}

// NewHTMLSink returns a sink for the error element paired with fieldID.
func NewHTMLSink(fieldID string) *HTMLSink {
	return &HTMLSink{fieldID: strings.TrimSpace(fieldID)}
}

// SetMessage sanitises and stores msg.
func (s *HTMLSink) SetMessage(msg string) {
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		s.text = ""
		return
	}
	s.text = strings.TrimSpace(messageSanitizer().Sanitize(trimmed))
}

// Text returns the sanitised message.
func (s *HTMLSink) Text() string { return s.text }

// HTML returns the error element fragment.
func (s *HTMLSink) HTML() string {
	var b strings.Builder
	b.WriteString(`<span class="error-msg" data-field="`)
	b.WriteString(html.EscapeString(s.fieldID))
	b.WriteString(`">`)
	b.WriteString(s.text)
	b.WriteString(`</span>`)
	return b.String()
}
