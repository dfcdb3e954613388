package content

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog resolves message ids to templates and formats them. Templates
// use positional holes ({0}, {1}, ...) which are compiled to printf verbs
// and rendered by a locale-aware printer.
type Catalog struct {
	templates [messageIDCount]string
	formats   [messageIDCount]string
	printer   *message.Printer
}

// NewCatalog builds a catalog. Every MessageID needs a non-empty template.
func NewCatalog(templates map[MessageID]string, tag language.Tag) (*Catalog, error) {
	c := &Catalog{printer: message.NewPrinter(tag)}
	var missing []string
	for _, id := range AllMessageIDs() {
		tpl := templates[id]
		if tpl == "" {
			missing = append(missing, id.String())
			continue
		}
		c.templates[id] = tpl
		c.formats[id] = compileTemplate(tpl)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: message templates %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return c, nil
}

// Template returns the raw template for id.
func (c *Catalog) Template(id MessageID) string {
	if id < 0 || id >= messageIDCount {
		return ""
	}
	return c.templates[id]
}

// Format fills the template's holes with args. Without args the raw
// template is returned.
func (c *Catalog) Format(id MessageID, args ...any) string {
	if id < 0 || id >= messageIDCount {
		return ""
	}
	if len(args) == 0 {
		return c.templates[id]
	}
	return c.printer.Sprintf(c.formats[id], args...)
}

// compileTemplate turns "{0} hits {1}" into "%[1]v hits %[2]v" and
// escapes literal percent signs.
func compileTemplate(tpl string) string {
	var b strings.Builder
	for i := 0; i < len(tpl); i++ {
		ch := tpl[i]
		if ch == '%' {
			b.WriteString("%%")
			continue
		}
		if ch == '{' {
			if end := strings.IndexByte(tpl[i:], '}'); end > 1 {
				if n, err := strconv.Atoi(tpl[i+1 : i+end]); err == nil && n >= 0 {
					fmt.Fprintf(&b, "%%[%d]v", n+1)
					i += end
					continue
				}
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}
