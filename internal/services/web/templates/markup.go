package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

var booleanAttrs = map[string]bool{
	"checked":  true,
	"selected": true,
	"required": true,
	"disabled": true,
	"hidden":   true,
}

// markup writes escaped HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func newMarkup(w io.Writer) *markup {
	return &markup{w: w}
}

func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

func (m *markup) text(value string) {
	m.raw(templ.EscapeString(value))
}

// open writes a start tag. attrs are name/value pairs; boolean attributes
// are written bare when their value is "true".
func (m *markup) open(tag string, attrs ...string) {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for idx := 0; idx+1 < len(attrs); idx += 2 {
		name, value := attrs[idx], attrs[idx+1]
		if booleanAttrs[name] {
			if value == "true" {
				b.WriteString(" ")
				b.WriteString(name)
			}
			continue
		}
		if value == "" && name == "class" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	m.raw(b.String())
}

func (m *markup) close(tag string) {
	m.raw("</", tag, ">")
}

// element writes a start tag, escaped text, and the end tag.
func (m *markup) element(tag string, value string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(value)
	m.close(tag)
}

func (m *markup) icon(id icons.ID, class string) {
	if class == "" {
		class = "icon"
	} else {
		class = "icon " + class
	}
	symbol := icons.LucideSymbolID(icons.LucideNameOrDefault(id))
	m.raw(`<svg class="`, templ.EscapeString(class), `" aria-hidden="true" focusable="false"><use href="#`, templ.EscapeString(symbol), `"></use></svg>`)
}

func (m *markup) component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *markup) children(ctx context.Context) {
	m.component(ctx, templ.GetChildren(ctx))
}

func classes(names ...string) string {
	kept := names[:0:0]
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}
