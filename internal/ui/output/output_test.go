package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/replica/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestColorProfile_Detected(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString("snapshot")
	assert.Equal(t, "snapshot", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestRenderer_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := output.Renderer(&buf)

	assert.Equal(t, termenv.Ascii, r.ColorProfile())
	assert.Equal(t, "ready", r.NewStyle().Bold(true).Render("ready"))
}
