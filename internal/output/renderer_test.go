package output

import (
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_RenderToString(t *testing.T) {
	t.Parallel()

	r := NewRenderer(logrus.New())

	out := r.RenderToString([]string{"Name", "Value"}, [][]string{{"camera", "ok"}})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "camera")
}

func TestRenderer_Options(t *testing.T) {
	t.Parallel()

	r := NewRenderer(logrus.New())

	headers := []string{"Capability"}
	rows := [][]string{{"x"}}

	t.Run("border", func(t *testing.T) {
		t.Parallel()

		plain := r.RenderToString(headers, rows)
		bordered := r.RenderToString(headers, rows, WithBorder(true))

		assert.NotEqual(t, plain, bordered)
	})

	t.Run("alignment", func(t *testing.T) {
		t.Parallel()

		left := r.RenderToString(headers, rows, WithAlignment(tablewriter.ALIGN_LEFT))
		right := r.RenderToString(headers, rows, WithAlignment(tablewriter.ALIGN_RIGHT))

		assert.NotEqual(t, left, right)
	})
}
