// internal/widget/render.go
package widget

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{[^{}]+\}\}`)
	commentsRe    = regexp.MustCompile(`(?s)(<cb-comments[^>]*>)(.*?)(</cb-comments>)`)

	// Pagination controls are assumed to be simple elements (buttons, links)
	// that do not nest a child of their own tag.
	prevControlRe = regexp.MustCompile(`(?s)<[a-zA-Z][a-zA-Z0-9-]*\b[^>]*\bdata-cb-previous\b[^>]*>.*?</[a-zA-Z][a-zA-Z0-9-]*>`)
	nextControlRe = regexp.MustCompile(`(?s)<[a-zA-Z][a-zA-Z0-9-]*\b[^>]*\bdata-cb-next\b[^>]*>.*?</[a-zA-Z][a-zA-Z0-9-]*>`)
)

// Render regenerates the widget markup wholesale from the current state. The
// inner <cb-comments> block is treated as a per-comment template repeated for
// each displayed comment; remaining {{field}} placeholders resolve against
// aggregate state (page, totalPages, date). Prev/next controls marked with
// data-cb-previous / data-cb-next are removed on the first / last page.
func (s *State) Render(tpl string) string {
	out := commentsRe.ReplaceAllStringFunc(tpl, func(block string) string {
		m := commentsRe.FindStringSubmatch(block)
		var b strings.Builder
		b.WriteString(m[1])
		for _, comment := range s.DisplayedComments() {
			b.WriteString(s.renderComment(m[2], comment))
		}
		b.WriteString(m[3])
		return b.String()
	})

	out = placeholderRe.ReplaceAllStringFunc(out, func(hb string) string {
		return s.resolveAggregate(placeholderKey(hb))
	})

	if !s.HasPrev() {
		out = prevControlRe.ReplaceAllString(out, "")
	}
	if !s.HasNext() {
		out = nextControlRe.ReplaceAllString(out, "")
	}
	return out
}

func (s *State) renderComment(tpl string, comment Comment) string {
	return placeholderRe.ReplaceAllStringFunc(tpl, func(hb string) string {
		switch key := placeholderKey(hb); key {
		case "date":
			return DisplayDate(comment.CreatedAt)
		case "id":
			return comment.ID
		case "author":
			return comment.Author
		case "body":
			return comment.Body
		default:
			return s.resolveAggregate(key)
		}
	})
}

func (s *State) resolveAggregate(key string) string {
	switch key {
	case "page":
		return fmt.Sprintf("%d", s.Page())
	case "totalPages":
		return fmt.Sprintf("%d", s.TotalPages())
	case "date":
		return DisplayDate(time.Now())
	default:
		return ""
	}
}

func placeholderKey(hb string) string {
	key := strings.TrimPrefix(hb, "{{")
	key = strings.TrimSuffix(key, "}}")
	return strings.TrimSpace(key)
}

// DisplayDate formats a timestamp the way the widget shows it: YYYY/M/D @ HH:MM.
func DisplayDate(t time.Time) string {
	return t.Format("2006/1/2 @ 15:04")
}
