package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationDialog represents a yes/no confirmation dialog
type ConfirmationDialog struct {
	Title       string
	Message     string
	YesSelected bool
	OnConfirm   func() tea.Cmd
}

// NewConfirmationDialog creates a new confirmation dialog
func NewConfirmationDialog(title, message string, onConfirm func() tea.Cmd) ConfirmationDialog {
	return ConfirmationDialog{
		Title:     title,
		Message:   message,
		OnConfirm: onConfirm,
	}
}

// Update обрабатывает клавиши диалога. done == true, когда выбор сделан.
func (d *ConfirmationDialog) Update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	switch msg.String() {
	case "left", "h", "right", "l", "tab":
		d.YesSelected = !d.YesSelected
	case "y":
		d.YesSelected = true
		return true, d.confirm()
	case "n", "esc":
		d.YesSelected = false
		return true, nil
	case "enter":
		if d.YesSelected {
			return true, d.confirm()
		}
		return true, nil
	}
	return false, nil
}

func (d *ConfirmationDialog) confirm() tea.Cmd {
	if d.OnConfirm == nil {
		return nil
	}
	return d.OnConfirm()
}

// View renders the confirmation dialog
func (d ConfirmationDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")
	if d.YesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return boxStyle.Render(b.String())
}

// Field: поле формы. Required-поле с пустым значением не даёт отправить форму.
type Field struct {
	Label    string
	Required string // сообщение для пустого обязательного поля
	Input    textinput.Model
}

// Form: модальная форма создания/редактирования.
type Form struct {
	Title  string
	Fields []Field
	focus  int
	err    string
}

// submitMsg: форма прошла валидацию и отправлена.
type submitMsg struct {
	values []string
}

// NewField создаёт поле с начальным значением.
func NewField(label, value, required string) Field {
	in := textinput.New()
	in.Placeholder = label
	in.CharLimit = 256
	in.Width = 40
	in.SetValue(value)
	return Field{Label: label, Required: required, Input: in}
}

// NewForm создаёт форму и ставит фокус на первое поле.
func NewForm(title string, fields ...Field) Form {
	f := Form{Title: title, Fields: fields}
	f.setFocus(0)
	return f
}

func (f *Form) setFocus(i int) {
	if len(f.Fields) == 0 {
		return
	}
	f.focus = (i + len(f.Fields)) % len(f.Fields)
	for j := range f.Fields {
		if j == f.focus {
			f.Fields[j].Input.Focus()
		} else {
			f.Fields[j].Input.Blur()
		}
	}
}

// Values возвращает текущие значения полей.
func (f Form) Values() []string {
	res := make([]string, len(f.Fields))
	for i, fl := range f.Fields {
		res[i] = fl.Input.Value()
	}
	return res
}

// Err: текст ошибки валидации.
func (f Form) Err() string { return f.err }

// validate проверяет обязательные поля до отправки.
func (f *Form) validate() bool {
	for i, fl := range f.Fields {
		if fl.Required != "" && strings.TrimSpace(fl.Input.Value()) == "" {
			f.err = fl.Required
			f.setFocus(i)
			return false
		}
	}
	f.err = ""
	return true
}

// Update обрабатывает ввод формы. Отправка происходит по enter на последнем поле или ctrl+s.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return nil
		case "enter":
			if f.focus < len(f.Fields)-1 {
				f.setFocus(f.focus + 1)
				return nil
			}
			return f.submit()
		case "ctrl+s":
			return f.submit()
		}
	}
	if len(f.Fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.focus].Input, cmd = f.Fields[f.focus].Input.Update(msg)
	return cmd
}

func (f *Form) submit() tea.Cmd {
	if !f.validate() {
		return nil
	}
	values := f.Values()
	return func() tea.Msg { return submitMsg{values: values} }
}

// View renders the form
func (f Form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.Title))
	b.WriteString("\n")
	for _, fl := range f.Fields {
		label := fl.Label
		if fl.Required != "" {
			label += " *"
		}
		b.WriteString(mutedStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(fl.Input.View())
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(dangerStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(FormatKey("tab", "next field") + " • " + FormatKey("enter", "save") + " • " + FormatKey("esc", "cancel")))
	return boxStyle.Render(b.String())
}

// toast: временное уведомление.
type toast struct {
	id   int
	text string
	ok   bool
}

func (t toast) View() string {
	if t.ok {
		return toastSuccessStyle.Render("✓ " + t.text)
	}
	return toastErrorStyle.Render("✗ " + t.text)
}
