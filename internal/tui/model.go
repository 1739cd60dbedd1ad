// Package tui renders the dashboard as an interactive terminal program.
//
// The TUI is a thin shell: every mutation goes through the service layer,
// which owns validation and permissions, and every figure on screen comes
// from the metrics and query packages over the shared state. The model
// itself keeps no domain data beyond table rows.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finboard/internal/model"
	"finboard/internal/query"
	"finboard/internal/service"
	"finboard/internal/session"
	"finboard/internal/state"
	"finboard/internal/tui/themes"
)

const dateLayout = "2006-01-02"

type screen int

const (
	screenAuth screen = iota
	screenDashboard
)

type tab int

const (
	tabSummary tab = iota
	tabTransactions
	tabTasks
	tabTeam
	tabCount
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirmDelete
)

type formKind int

const (
	formNone formKind = iota
	formTransaction
	formTask
	formInvite
)

// Config holds the dependencies the TUI runs against.
type Config struct {
	State    *state.State
	Services *service.Services
	Session  *session.Session
	Theme    themes.Theme
}

// Model holds the full TUI state.
type Model struct {
	ctx    context.Context
	cfg    Config
	theme  themes.Theme
	keymap KeyMap

	screen screen
	tab    tab
	mode   mode

	auth     authModel
	form     form
	formKind formKind

	txnTable  table.Model
	taskTable table.Model
	teamTable table.Model

	txnTypeFilter    string
	taskStatusFilter string

	// id awaiting the delete confirmation, valid in modeConfirmDelete.
	pendingDelete string

	status    string
	statusErr bool

	width    int
	height   int
	quitting bool
}

func newModel(ctx context.Context, cfg Config) Model {
	m := Model{
		ctx:              ctx,
		cfg:              cfg,
		theme:            cfg.Theme,
		keymap:           DefaultKeyMap(),
		screen:           screenAuth,
		auth:             newAuthModel(),
		txnTypeFilter:    query.All,
		taskStatusFilter: query.All,
	}

	m.txnTable = newTable(cfg.Theme, []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Data", Width: 10},
		{Title: "Tipo", Width: 8},
		{Title: "Categoria", Width: 18},
		{Title: "Descrição", Width: 24},
		{Title: "Valor", Width: 12},
		{Title: "Pagamento", Width: 10},
		{Title: "Por", Width: 12},
	})
	m.taskTable = newTable(cfg.Theme, []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Título", Width: 26},
		{Title: "Responsável", Width: 14},
		{Title: "Status", Width: 12},
		{Title: "Prazo", Width: 10},
		{Title: "Criada por", Width: 14},
	})
	m.teamTable = newTable(cfg.Theme, []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Nome", Width: 16},
		{Title: "Email", Width: 24},
		{Title: "Papel", Width: 8},
		{Title: "Transações", Width: 10},
		{Title: "Resultado", Width: 12},
		{Title: "Tarefas", Width: 7},
		{Title: "Conclusão", Width: 9},
	})

	if cfg.Session.LoggedIn() {
		m.screen = screenDashboard
	}
	m.refresh()
	return m
}

func newTable(theme themes.Theme, columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)
	return t
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screen == screenAuth {
			return m.updateAuth(msg)
		}
		return m.updateDashboard(msg)
	}

	return m, nil
}

func (m *Model) handleResize() {
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	m.txnTable.SetHeight(h)
	m.taskTable.SetHeight(h)
	m.teamTable.SetHeight(h)
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Submit):
		if m.auth.form.atLast() {
			m.submitAuth()
		} else {
			m.auth.form.next()
		}
		return m, nil
	case msg.String() == "ctrl+r":
		m.auth.toggle()
		m.clearStatus()
		return m, nil
	case msg.String() == "up", msg.String() == "shift+tab":
		m.auth.form.prev()
		return m, nil
	case msg.String() == "down", msg.String() == "tab":
		m.auth.form.next()
		return m, nil
	}
	cmd := m.auth.form.update(msg)
	return m, cmd
}

func (m *Model) submitAuth() {
	if m.auth.mode == authLogin {
		email := m.auth.form.value(0)
		password := m.auth.form.inputs[1].Value()
		user, err := m.cfg.Services.Auth.Login(m.ctx, email, password)
		if err != nil {
			m.setError(err)
			return
		}
		m.screen = screenDashboard
		m.tab = tabSummary
		m.refresh()
		m.setNotice("bem-vindo, " + user.Name)
		return
	}

	_, err := m.cfg.Services.Auth.Register(m.ctx, service.RegisterInput{
		Name:            m.auth.form.value(0),
		Email:           m.auth.form.value(1),
		Password:        m.auth.form.inputs[2].Value(),
		ConfirmPassword: m.auth.form.inputs[3].Value(),
	})
	if err != nil {
		m.setError(err)
		return
	}
	m.auth.toggle()
	m.setNotice("conta criada, entre com suas credenciais")
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, km.NextTab):
		m.tab = (m.tab + 1) % tabCount
		m.clearStatus()
		return m, nil

	case key.Matches(msg, km.PrevTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
		m.clearStatus()
		return m, nil

	case key.Matches(msg, km.Logout):
		m.cfg.Services.Auth.Logout(m.ctx)
		m.screen = screenAuth
		m.auth = newAuthModel()
		m.setNotice("sessão encerrada")
		return m, nil

	case key.Matches(msg, km.New):
		m.openForm()
		return m, nil

	case key.Matches(msg, km.Delete):
		m.requestDelete()
		return m, nil

	case key.Matches(msg, km.CycleStatus):
		switch m.tab {
		case tabTasks:
			m.advanceTaskStatus()
		case tabTeam:
			m.cycleUserRole()
		}
		return m, nil

	case msg.String() == "r" && m.tab == tabTeam:
		m.cycleUserRole()
		return m, nil

	case key.Matches(msg, km.CycleFilter):
		m.cycleFilter()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.tab {
	case tabTransactions:
		m.txnTable, cmd = m.txnTable.Update(msg)
	case tabTasks:
		m.taskTable, cmd = m.taskTable.Update(msg)
	case tabTeam:
		m.teamTable, cmd = m.teamTable.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		if m.form.atLast() {
			m.submitForm()
		} else {
			m.form.next()
		}
		return m, nil
	case msg.String() == "up", msg.String() == "shift+tab":
		m.form.prev()
		return m, nil
	case msg.String() == "down", msg.String() == "tab":
		m.form.next()
		return m, nil
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "s", "enter":
		m.confirmDelete()
	case "n", "esc":
		m.mode = modeBrowse
		m.pendingDelete = ""
		m.clearStatus()
	}
	return m, nil
}

// openForm starts the new-record form for the active tab. The capability
// check here only saves the user from filling a form the service would
// reject anyway; the service remains the authority.
func (m *Model) openForm() {
	caps := m.cfg.Session.Capabilities()
	switch m.tab {
	case tabTransactions:
		if !caps.AddTransactions {
			m.setErrorMsg("seu papel não permite registrar transações")
			return
		}
		m.form = newTransactionForm()
		m.formKind = formTransaction
	case tabTasks:
		if !caps.ManageTasks {
			m.setErrorMsg("seu papel não permite criar tarefas")
			return
		}
		m.form = newTaskForm()
		m.formKind = formTask
	case tabTeam:
		if !caps.ManageUsers {
			m.setErrorMsg("apenas administradores convidam membros")
			return
		}
		m.form = newInviteForm()
		m.formKind = formInvite
	default:
		return
	}
	m.mode = modeForm
	m.clearStatus()
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.formKind = formNone
	m.clearStatus()
}

func (m *Model) submitForm() {
	switch m.formKind {
	case formTransaction:
		m.submitTransaction()
	case formTask:
		m.submitTask()
	case formInvite:
		m.submitInvite()
	}
}

func (m *Model) submitTransaction() {
	actor, ok := m.cfg.Session.Actor()
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m.form.value(3), ",", "."), 64)
	if err != nil {
		m.setErrorMsg("valor inválido")
		return
	}
	var date time.Time
	if v := m.form.value(4); v != "" {
		date, err = time.Parse(dateLayout, v)
		if err != nil {
			m.setErrorMsg("data inválida, use AAAA-MM-DD")
			return
		}
	}

	_, err = m.cfg.Services.Transactions.Add(m.ctx, actor, service.AddTransactionInput{
		Type:          model.TransactionType(m.form.value(0)),
		Category:      m.form.value(1),
		Description:   m.form.value(2),
		Amount:        amount,
		Date:          date,
		PaymentMethod: m.form.value(5),
		Platform:      m.form.value(6),
		IsAdvertising: isYes(m.form.value(7)),
	})
	if err != nil {
		m.setError(err)
		return
	}
	m.closeForm()
	m.refresh()
	m.setNotice("transação registrada")
}

func (m *Model) submitTask() {
	actor, ok := m.cfg.Session.Actor()
	if !ok {
		return
	}
	var due time.Time
	if v := m.form.value(3); v != "" {
		var err error
		due, err = time.Parse(dateLayout, v)
		if err != nil {
			m.setErrorMsg("data inválida, use AAAA-MM-DD")
			return
		}
	}

	_, err := m.cfg.Services.Tasks.Add(m.ctx, actor, service.AddTaskInput{
		Title:       m.form.value(0),
		Description: m.form.value(1),
		AssignedTo:  m.form.value(2),
		DueDate:     due,
	})
	if err != nil {
		m.setError(err)
		return
	}
	m.closeForm()
	m.refresh()
	m.setNotice("tarefa criada")
}

func (m *Model) submitInvite() {
	actor, ok := m.cfg.Session.Actor()
	if !ok {
		return
	}
	inv, err := m.cfg.Services.Users.Invite(m.ctx, actor, m.form.value(0), model.Role(m.form.value(1)))
	if err != nil {
		m.setError(err)
		return
	}
	m.closeForm()
	m.refresh()
	m.setNotice("convite registrado para " + inv.Email)
}

func (m *Model) requestDelete() {
	var id, what string
	switch m.tab {
	case tabTransactions:
		id = selectedID(m.txnTable)
		what = "transação"
	case tabTasks:
		id = selectedID(m.taskTable)
		what = "tarefa"
	default:
		return
	}
	if id == "" {
		return
	}
	m.pendingDelete = id
	m.mode = modeConfirmDelete
	m.status = "Excluir " + what + " " + id + "? (y/n)"
	m.statusErr = false
}

func (m *Model) confirmDelete() {
	actor, ok := m.cfg.Session.Actor()
	if !ok {
		return
	}
	var err error
	switch m.tab {
	case tabTransactions:
		err = m.cfg.Services.Transactions.Delete(m.ctx, actor, m.pendingDelete)
	case tabTasks:
		err = m.cfg.Services.Tasks.Delete(m.ctx, actor, m.pendingDelete)
	}
	m.mode = modeBrowse
	m.pendingDelete = ""
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setNotice("registro excluído")
}

// advanceTaskStatus moves the selected task one step through
// pending, in-progress, completed, and back around.
func (m *Model) advanceTaskStatus() {
	actor, ok := m.cfg.Session.Actor()
	if !ok {
		return
	}
	id := selectedID(m.taskTable)
	if id == "" {
		return
	}
	task, ok := m.cfg.State.TaskByID(id)
	if !ok {
		return
	}

	var next model.TaskStatus
	switch task.Status {
	case model.TaskPending:
		next = model.TaskInProgress
	case model.TaskInProgress:
		next = model.TaskCompleted
	default:
		next = model.TaskPending
	}

	if _, err := m.cfg.Services.Tasks.UpdateStatus(m.ctx, actor, id, next); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setNotice("tarefa agora " + string(next))
}

// cycleUserRole moves the selected user to the next role.
func (m *Model) cycleUserRole() {
	actor, ok := m.cfg.Session.Actor()
	if !ok {
		return
	}
	id := selectedID(m.teamTable)
	if id == "" {
		return
	}
	user, ok := m.cfg.State.UserByID(id)
	if !ok {
		return
	}

	var next model.Role
	switch user.Role {
	case model.RoleAdmin:
		next = model.RoleUser
	case model.RoleUser:
		next = model.RoleViewer
	default:
		next = model.RoleAdmin
	}

	if _, err := m.cfg.Services.Users.UpdateRole(m.ctx, actor, id, next); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setNotice(user.Name + " agora é " + string(next))
}

func (m *Model) cycleFilter() {
	switch m.tab {
	case tabTransactions:
		cycle := []string{query.All, string(model.TypeEntrada), string(model.TypeSaida), string(model.TypeAporte)}
		m.txnTypeFilter = nextIn(cycle, m.txnTypeFilter)
	case tabTasks:
		cycle := []string{query.All, string(model.TaskPending), string(model.TaskInProgress), string(model.TaskCompleted)}
		m.taskStatusFilter = nextIn(cycle, m.taskStatusFilter)
	default:
		return
	}
	m.refresh()
	m.clearStatus()
}

func nextIn(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func selectedID(t table.Model) string {
	row := t.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) setErrorMsg(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) setNotice(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
