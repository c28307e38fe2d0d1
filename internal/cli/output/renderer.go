package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes command output in the effective mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// rendererKey is used to store the renderer in context.
type rendererKey struct{}

// RendererKey returns the context key used for storing the renderer.
func RendererKey() interface{} {
	return rendererKey{}
}

// GetRenderer retrieves the renderer from ctx.
func GetRenderer(ctx context.Context) (*Renderer, bool) {
	r, ok := ctx.Value(rendererKey{}).(*Renderer)
	return r, ok
}

// NewRenderer creates a renderer for out. Auto mode is resolved against out.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   resolve(mode, out),
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// EffectiveMode returns the mode after auto detection.
func (r *Renderer) EffectiveMode() Mode {
	return r.mode
}

// Styles returns the text mode styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the primary output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line to the output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a level 1 or level 2 header in the effective mode.
func (r *Renderer) Header(level int, title string) {
	if r.mode != ModeText {
		r.Println(FormatHeader(level, title))
		r.Println("")
		return
	}
	if level <= 1 {
		r.Println(r.styles.Header.Render(title))
		return
	}
	r.Println(r.styles.Header2.Render(title))
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	if r.mode == ModeText {
		r.Println(r.styles.Success.Render("✓ " + msg))
		return
	}
	r.Println(msg)
}

// Muted writes a de-emphasized message.
func (r *Renderer) Muted(msg string) {
	if r.mode == ModeText {
		r.Println(r.styles.Muted.Render(msg))
		return
	}
	r.Println(msg)
}

// Warning writes a warning to the error writer.
func (r *Renderer) Warning(msg string) {
	if r.mode == ModeText {
		_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("! "+msg))
		return
	}
	_, _ = fmt.Fprintln(r.errOut, "Warning: "+msg)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatHeader returns a markdown header.
func FormatHeader(level int, title string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + title
}

// FormatKeyValue returns a markdown list item for a key/value pair.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}
