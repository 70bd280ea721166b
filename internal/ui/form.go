package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of single-line inputs optionally followed by a textarea.
// Focus moves top to bottom and wraps.
type form struct {
	inputs  []textinput.Model
	area    textarea.Model
	hasArea bool
	focus   int
}

func newForm(placeholders []string, areaPlaceholder string, width int) form {
	f := form{inputs: make([]textinput.Model, len(placeholders))}
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = "> "
		ti.CharLimit = 512
		ti.Width = maxInt(width-4, 10)
		f.inputs[i] = ti
	}
	if areaPlaceholder != "" {
		ta := textarea.New()
		ta.Placeholder = areaPlaceholder
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.SetWidth(maxInt(width-2, 10))
		ta.SetHeight(4)
		f.area = ta
		f.hasArea = true
	}
	return f
}

func (f *form) size() int {
	if f.hasArea {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

// onArea reports whether the textarea holds focus.
func (f *form) onArea() bool {
	return f.hasArea && f.focus == len(f.inputs)
}

// onLast reports whether focus is on the final field.
func (f *form) onLast() bool {
	return f.focus == f.size()-1
}

// Focus gives focus to the current field.
func (f *form) Focus() tea.Cmd {
	f.blurAll()
	if f.onArea() {
		return f.area.Focus()
	}
	if f.focus < len(f.inputs) {
		return f.inputs[f.focus].Focus()
	}
	return nil
}

// Blur removes focus from every field.
func (f *form) Blur() {
	f.blurAll()
}

func (f *form) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if f.hasArea {
		f.area.Blur()
	}
}

// Next moves focus to the following field.
func (f *form) Next() tea.Cmd {
	if n := f.size(); n > 0 {
		f.focus = (f.focus + 1) % n
	}
	return f.Focus()
}

// Update forwards msg to the focused field.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.onArea() {
		f.area, cmd = f.area.Update(msg)
		return cmd
	}
	if f.focus < len(f.inputs) {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return cmd
}

// Values returns the inputs in order, then the textarea.
func (f *form) Values() []string {
	out := make([]string, 0, f.size())
	for _, in := range f.inputs {
		out = append(out, in.Value())
	}
	if f.hasArea {
		out = append(out, f.area.Value())
	}
	return out
}

// SetValue fills field i.
func (f *form) SetValue(i int, v string) {
	if i < len(f.inputs) {
		f.inputs[i].SetValue(v)
		f.inputs[i].CursorEnd()
		return
	}
	if f.hasArea {
		f.area.SetValue(v)
	}
}

// Reset clears every field and returns focus to the top.
func (f *form) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	if f.hasArea {
		f.area.Reset()
	}
	f.focus = 0
}

// SetWidth resizes every field.
func (f *form) SetWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = maxInt(width-4, 10)
	}
	if f.hasArea {
		f.area.SetWidth(maxInt(width-2, 10))
	}
}

func (f form) View() string {
	parts := make([]string, 0, f.size())
	for _, in := range f.inputs {
		parts = append(parts, in.View())
	}
	if f.hasArea {
		parts = append(parts, f.area.View())
	}
	return strings.Join(parts, "\n")
}
