package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/tui/themes"
)

// formField describes one input of a form.
type formField struct {
	label       string
	placeholder string
	secret      bool
}

// form is a vertical stack of labelled text inputs with a single focus.
// Enter advances the focus and submits from the last field; submission
// itself is handled by the owning model.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields ...formField) form {
	f := form{title: title}
	for i, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.CharLimit = 128
		in.Width = 42
		if fd.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *form) next() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *form) prev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

// atLast reports whether the focus sits on the final input.
func (f *form) atLast() bool {
	return f.focus == len(f.inputs)-1
}

// value returns the trimmed content of input i.
func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (f *form) view(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(f.title))
	b.WriteString("\n")
	for i := range f.inputs {
		label := theme.Muted.Render(f.labels[i])
		if i == f.focus {
			label = theme.Bold.Render(f.labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return theme.Box.Render(b.String())
}

func newTransactionForm() form {
	return newForm("Nova transação",
		formField{label: "Tipo (entrada, saida ou aporte)", placeholder: "saida"},
		formField{label: "Categoria", placeholder: "Anúncios Facebook"},
		formField{label: "Descrição", placeholder: "campanha de conversão"},
		formField{label: "Valor (R$)", placeholder: "150.00"},
		formField{label: "Data (AAAA-MM-DD, vazio = hoje)"},
		formField{label: "Forma de pagamento", placeholder: "PIX"},
		formField{label: "Plataforma (opcional)", placeholder: "Facebook"},
		formField{label: "Anúncio? (s/n)", placeholder: "n"},
	)
}

func newTaskForm() form {
	return newForm("Nova tarefa",
		formField{label: "Título", placeholder: "Fechar relatório do mês"},
		formField{label: "Descrição"},
		formField{label: "Responsável (id do usuário)", placeholder: "1"},
		formField{label: "Prazo (AAAA-MM-DD, vazio = hoje)"},
	)
}

func newInviteForm() form {
	return newForm("Convidar membro",
		formField{label: "Email", placeholder: "pessoa@empresa.com"},
		formField{label: "Papel (admin, user ou viewer)", placeholder: "user"},
	)
}

// isYes interprets a free-form boolean answer, accepting both Portuguese
// and English affirmatives.
func isYes(v string) bool {
	switch strings.ToLower(v) {
	case "s", "sim", "y", "yes", "true", "1":
		return true
	}
	return false
}
