package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"finboard/internal/metrics"
	"finboard/internal/model"
	"finboard/internal/query"
)

// refresh rebuilds every table from the shared state, applying the active
// filters. Called after every mutation and filter change.
func (m *Model) refresh() {
	txns := query.Transactions(m.cfg.State.Transactions(), query.TransactionFilter{
		Type: m.txnTypeFilter,
	})
	txnRows := make([]table.Row, 0, len(txns))
	for _, t := range txns {
		txnRows = append(txnRows, table.Row{
			t.ID,
			t.Date.Format(dateLayout),
			string(t.Type),
			t.Category,
			t.Description,
			money(t.Amount),
			t.PaymentMethod,
			t.UserName,
		})
	}
	m.txnTable.SetRows(txnRows)

	tasks := query.Tasks(m.cfg.State.Tasks(), query.TaskFilter{
		Status: m.taskStatusFilter,
	})
	taskRows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		taskRows = append(taskRows, table.Row{
			t.ID,
			t.Title,
			t.AssignedToName,
			string(t.Status),
			t.DueDate.Format(dateLayout),
			t.CreatedByName,
		})
	}
	m.taskTable.SetRows(taskRows)

	users := m.cfg.State.Users()
	activity := make(map[string]metrics.UserActivity)
	for _, a := range metrics.ActivityByUser(m.cfg.State.Transactions(), users) {
		activity[a.UserID] = a
	}
	productivity := make(map[string]metrics.UserProductivity)
	for _, p := range metrics.ProductivityByUser(m.cfg.State.Tasks(), users) {
		productivity[p.UserID] = p
	}
	teamRows := make([]table.Row, 0, len(users))
	for _, u := range users {
		a := activity[u.ID]
		p := productivity[u.ID]
		completion := "-"
		if p.Assigned > 0 {
			completion = fmt.Sprintf("%.0f%%", p.CompletionRate)
		}
		teamRows = append(teamRows, table.Row{
			u.ID,
			u.Name,
			u.Email,
			string(u.Role),
			strconv.Itoa(a.Transactions),
			money(a.Net),
			strconv.Itoa(p.Assigned),
			completion,
		})
	}
	m.teamTable.SetRows(teamRows)
}

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenAuth {
		return m.authView()
	}
	return m.dashboardView()
}

func (m Model) authView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("FinBoard"))
	b.WriteString("\n")
	b.WriteString(m.auth.form.view(m.theme))
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString(m.theme.Muted.Render("Enter confirma · Ctrl+R alterna entrar/criar conta · Ctrl+C sai"))
	return b.String()
}

func (m Model) dashboardView() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.tabBarView())
	b.WriteString("\n\n")

	if m.mode == modeForm {
		b.WriteString(m.form.view(m.theme))
		b.WriteString("\n")
		b.WriteString(m.statusView())
		b.WriteString(m.theme.Muted.Render("Enter avança e confirma · Esc cancela"))
		return b.String()
	}

	switch m.tab {
	case tabSummary:
		b.WriteString(m.summaryView())
	case tabTransactions:
		b.WriteString(m.filterLine("tipo", m.txnTypeFilter))
		b.WriteString("\n")
		b.WriteString(m.txnTable.View())
	case tabTasks:
		b.WriteString(m.filterLine("status", m.taskStatusFilter))
		b.WriteString("\n")
		b.WriteString(m.taskTable.View())
	case tabTeam:
		b.WriteString(m.teamTable.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) headerView() string {
	title := m.theme.Title.Render("FinBoard")
	who := ""
	if u, ok := m.cfg.Session.User(); ok {
		who = m.theme.Subtitle.Render(fmt.Sprintf("%s (%s)", u.Name, roleLabel(u.Role)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", who)
}

func (m Model) tabBarView() string {
	names := []string{"Resumo", "Transações", "Tarefas", "Equipe"}
	parts := make([]string, len(names))
	for i, name := range names {
		if tab(i) == m.tab {
			parts[i] = m.theme.TabActive.Render(name)
		} else {
			parts[i] = m.theme.TabInactive.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) summaryView() string {
	txns := m.cfg.State.Transactions()
	s := metrics.Summarize(txns)
	ts := metrics.SummarizeTasks(m.cfg.State.Tasks(), time.Now())

	balanceStyle := m.theme.Positive
	if s.Balance < 0 {
		balanceStyle = m.theme.Negative
	}
	profitStyle := m.theme.Positive
	if s.NetProfit < 0 {
		profitStyle = m.theme.Negative
	}

	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Saldo", money(s.Balance), balanceStyle),
		m.card("Receitas", money(s.TotalIncome), m.theme.Positive),
		m.card("Despesas", money(s.TotalExpense), m.theme.Negative),
		m.card("Aportes", money(s.TotalContribution), m.theme.StatusInfo),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Lucro Líquido", money(s.NetProfit), profitStyle),
		m.card("Gasto em Anúncios", money(s.AdSpend), m.theme.StatusWarning),
		m.card("ROI", fmt.Sprintf("%.1f%%", s.ROI), m.theme.Bold),
		m.card("ROAS", fmt.Sprintf("%.2fx", s.ROAS), m.theme.Bold),
	)
	row3 := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Anúncios Google", money(metrics.PlatformSpend(txns, "Google")), m.theme.Normal),
		m.card("Anúncios Facebook", money(metrics.PlatformSpend(txns, "Facebook")), m.theme.Normal),
		m.card("Tarefas", fmt.Sprintf("%d pendentes · %d em andamento", ts.Pending, ts.InProgress), m.theme.Normal),
		m.card("Atrasadas", strconv.Itoa(ts.Overdue), m.theme.StatusError),
	)

	return lipgloss.JoinVertical(lipgloss.Left, row1, row2, row3)
}

func (m Model) card(label, value string, style lipgloss.Style) string {
	return m.theme.Card.Render(m.theme.Muted.Render(label) + "\n" + style.Render(value))
}

func (m Model) filterLine(name, value string) string {
	return m.theme.Subtitle.Render(fmt.Sprintf("filtro %s: %s", name, value))
}

func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	style := m.theme.StatusSuccess
	if m.statusErr {
		style = m.theme.StatusError
	}
	if m.mode == modeConfirmDelete {
		style = m.theme.StatusWarning
	}
	return style.Render(m.status) + "\n"
}

func (m Model) helpView() string {
	common := "Tab abas · Ctrl+O sair da conta · q sai"
	var extra string
	switch m.tab {
	case tabTransactions:
		extra = "n nova · d excluir · f filtro · "
	case tabTasks:
		extra = "n nova · s status · d excluir · f filtro · "
	case tabTeam:
		extra = "n convidar · r papel · "
	}
	return m.theme.Muted.Render(extra + common)
}

func roleLabel(r model.Role) string {
	switch r {
	case model.RoleAdmin:
		return "administrador"
	case model.RoleUser:
		return "membro"
	case model.RoleViewer:
		return "observador"
	}
	return string(r)
}
