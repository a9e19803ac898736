package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveMode_ExplicitModesPassThrough(t *testing.T) {
	var buf bytes.Buffer
	for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
		r := NewRenderer(&buf, &buf, mode)
		assert.Equal(t, mode, r.EffectiveMode())
	}
}

func TestEffectiveMode_AutoFallsBackToMarkdown(t *testing.T) {
	// A buffer is not a terminal, so auto resolves to the piped mode.
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())

	r = NewRenderer(&buf, &buf, "")
	assert.Equal(t, ModeMarkdown, r.EffectiveMode(), "empty mode defaults to auto")
}

func TestRendererWriters(t *testing.T) {
	var out, errW bytes.Buffer
	r := NewRenderer(&out, &errW, ModeText)

	r.Println("hello")
	r.Printf("%d fragments\n", 2)

	assert.Equal(t, "hello\n2 fragments\n", out.String())
	assert.Empty(t, errW.String())
	assert.Equal(t, &errW, r.ErrWriter())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Rendered SQL", FormatHeader(2, "Rendered SQL"))
	assert.Equal(t, "```sql\nselect 1\n```", FormatCodeBlock("sql", "select 1"))
}
