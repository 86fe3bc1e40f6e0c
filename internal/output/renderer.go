package output

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Renderer provides table rendering utilities.
type Renderer struct {
	log logrus.FieldLogger
}

// NewRenderer creates a new table renderer.
func NewRenderer(log logrus.FieldLogger) *Renderer {
	return &Renderer{
		log: log.WithField("component", "output.renderer"),
	}
}

// RenderOption configures table rendering.
type RenderOption func(*tablewriter.Table)

// WithAlignment sets column alignment (use tablewriter constants).
func WithAlignment(alignment int) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetAlignment(alignment)
	}
}

// WithBorder controls border visibility.
func WithBorder(show bool) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetBorder(show)
	}
}

// RenderToString renders a table into a string.
func (r *Renderer) RenderToString(headers []string, rows [][]string, opts ...RenderOption) string {
	buf := &bytes.Buffer{}
	r.RenderToWriter(buf, headers, rows, opts...)
	return buf.String()
}

// RenderToWriter renders a table to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, headers []string, rows [][]string, opts ...RenderOption) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(true)
	t.SetAutoWrapText(false)
	t.SetBorder(false)
	t.SetRowSeparator("")

	for _, opt := range opts {
		opt(t)
	}

	t.AppendBulk(rows)
	t.Render()
}
