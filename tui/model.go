// Package tui is the terminal front end of the wage calculator. All edits
// happen on the Bubble Tea update loop and go through the calculator's
// setters, so the rendered figures always match the latest input.
package tui

import (
	"log/slog"

	"wagecalc/logging"
	"wagecalc/models"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldName field = iota
	fieldProject
	fieldHoursLogged
	fieldHoursWorked
	fieldRate
	fieldApproval
	fieldCount
)

// number of fields backed by a text input
const textFields = int(fieldRate)

var fieldLabels = [fieldCount]string{
	"Employee Name",
	"Project Name",
	"Hours Logged",
	"Hours Worked",
	"Hourly Rate",
	"Approved",
}

type Model struct {
	calc      *models.Calculator
	inputs    []textinput.Model
	focus     field
	rateIndex int // index into models.AllowedRates, -1 while the default rate is in use
	keys      KeyMap
	help      help.Model
	width     int
	logger    *slog.Logger
	quitting  bool
}

// Run starts the terminal form and blocks until the user quits.
func Run(logger *slog.Logger) error {
	_, err := tea.NewProgram(NewModel(logging.WithComponent(logger, logging.ComponentTUI)), tea.WithAltScreen()).Run()
	return err
}

func NewModel(logger *slog.Logger) Model {
	m := Model{
		calc:      models.NewCalculator(),
		inputs:    make([]textinput.Model, textFields),
		rateIndex: -1,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
	}

	placeholders := [textFields]string{"Enter employee name", "Enter project name", "0", "0"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = models.MaxNameLength
		if field(i) == fieldHoursLogged || field(i) == fieldHoursWorked {
			ti.CharLimit = 12
		}
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Focus()

	m.calc.Subscribe(func(in models.WageInput, d models.WageDerivation) {
		m.logger.Debug("wage recomputed",
			"hours_logged", in.HoursLogged,
			"hours_worked", in.HoursWorked,
			"hourly_rate", in.HourlyRate,
			"overtime_hours", d.OvertimeHours,
			"total_wage", d.TotalWage)
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			return m.reset(), nil
		case key.Matches(msg, m.keys.Next):
			return m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}

		switch m.focus {
		case fieldRate:
			return m.updateRate(msg), nil
		case fieldApproval:
			return m.updateApproval(msg), nil
		}
	}

	if int(m.focus) < textFields {
		return m.updateInput(msg)
	}
	return m, nil
}

// Calculator exposes the session state for rendering and tests.
func (m Model) Calculator() *models.Calculator {
	return m.calc
}

func (m Model) setFocus(f field) (Model, tea.Cmd) {
	if int(m.focus) < textFields {
		m.inputs[m.focus].Blur()
	}
	m.focus = f
	if int(f) < textFields {
		return m, m.inputs[f].Focus()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	value := m.inputs[m.focus].Value()
	if value == before {
		return m, cmd
	}

	switch m.focus {
	case fieldName:
		m.calc.SetEmployeeName(value)
	case fieldProject:
		m.calc.SetProjectName(value)
	case fieldHoursLogged:
		m.calc.SetHoursLoggedText(value)
		m.syncWorkedText()
	case fieldHoursWorked:
		m.calc.SetHoursWorkedText(value)
		m.syncWorkedText()
	}
	return m, cmd
}

// syncWorkedText rewrites the worked-hours field when the calculator clamped
// it below what the field shows.
func (m Model) syncWorkedText() {
	worked := m.calc.Input().HoursWorked
	if models.ParseHours(m.inputs[fieldHoursWorked].Value()) > worked {
		m.inputs[fieldHoursWorked].SetValue(models.FormatNumber(worked))
	}
}

func (m Model) updateRate(msg tea.KeyMsg) Model {
	n := len(models.AllowedRates)
	switch {
	case key.Matches(msg, m.keys.Right):
		m.rateIndex = (m.rateIndex + 1) % n
	case key.Matches(msg, m.keys.Left):
		if m.rateIndex <= 0 {
			m.rateIndex = n - 1
		} else {
			m.rateIndex--
		}
	default:
		return m
	}
	if err := m.calc.SetHourlyRate(models.AllowedRates[m.rateIndex]); err != nil {
		m.logger.Error("set hourly rate", logging.FieldError, err)
	}
	return m
}

func (m Model) updateApproval(msg tea.KeyMsg) Model {
	approval := m.calc.Input().Approval
	switch {
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Space):
		if approval == models.ApprovalYes {
			approval = models.ApprovalNo
		} else {
			approval = models.ApprovalYes
		}
	case key.Matches(msg, m.keys.Yes):
		approval = models.ApprovalYes
	case key.Matches(msg, m.keys.No):
		approval = models.ApprovalNo
	default:
		return m
	}
	if err := m.calc.SetApproval(approval); err != nil {
		m.logger.Error("set approval", logging.FieldError, err)
	}
	return m
}

func (m Model) reset() Model {
	fresh := NewModel(m.logger)
	fresh.width = m.width
	fresh.help.Width = m.help.Width
	return fresh
}
