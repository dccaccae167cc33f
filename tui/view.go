package tui

import (
	"fmt"
	"strings"

	"wagecalc/models"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	in := m.calc.Input()
	d := m.calc.Derivation()

	left := []string{m.viewInputs(in)}
	if report, ok := models.BuildReport(in, d); ok {
		left = append(left, viewReport(report))
	}
	right := []string{viewSummary(in, d), viewDetails(models.BuildProjectDetails(in))}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		" ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		viewChart(models.HoursComparison(in), false),
		" ",
		viewChart(models.OvertimeBreakdown(in, d), true),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Employee Wage Calculator"),
		top,
		charts,
		HelpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) viewInputs(in models.WageInput) string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Input Details") + "\n")
	for f := field(0); f < fieldCount; f++ {
		label := LabelStyle.Render(fieldLabels[f])
		if f == m.focus {
			label = FocusedLabelStyle.Render(fieldLabels[f])
		}

		var value string
		switch f {
		case fieldRate:
			value = selector(fmt.Sprintf("$%s/hr", models.FormatNumber(in.HourlyRate)), f == m.focus)
		case fieldApproval:
			answer := "No"
			if in.IsApproved() {
				answer = "Yes"
			}
			value = selector(answer, f == m.focus)
		default:
			value = m.inputs[f].View()
		}
		b.WriteString(label + " " + value + "\n")
	}
	return PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func selector(value string, focused bool) string {
	if focused {
		return "‹ " + ValueStyle.Render(value) + " ›"
	}
	return "  " + ValueStyle.Render(value)
}

func viewSummary(in models.WageInput, d models.WageDerivation) string {
	lines := []string{
		PanelTitleStyle.Render("Wage Summary"),
		TotalStyle.Render(models.FormatMoney(d.TotalWage)),
		fmt.Sprintf("Total wage for %s hours", models.FormatNumber(in.HoursLogged)),
		row("Overtime Hours", models.FormatNumber(d.OvertimeHours)),
		row("Hourly Rate", "$"+models.FormatNumber(in.HourlyRate)),
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func viewDetails(details models.ProjectDetails) string {
	status := NotApprovedStyle.Render(details.ApprovalStatus)
	if details.Approved {
		status = ApprovedStyle.Render(details.ApprovalStatus)
	}
	lines := []string{
		PanelTitleStyle.Render("Project Details"),
		row("Employee", details.Employee),
		row("Project", details.Project),
		row("Manager Approval", status),
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func viewReport(r models.Report) string {
	lines := append([]string{PanelTitleStyle.Render("Wage Report")}, r.Lines()...)
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func viewChart(c models.ChartData, withPercent bool) string {
	lines := []string{PanelTitleStyle.Render(c.Title)}
	for _, p := range c.Points {
		n := c.Scale(p.Value, barWidth)
		bar := barStyle(p.Color).Render(strings.Repeat("█", n)) + strings.Repeat(" ", barWidth-n)
		value := models.FormatNumber(p.Value)
		if withPercent {
			value += " (" + p.PercentLabel() + ")"
		}
		lines = append(lines, LabelStyle.Render(p.Label)+" "+bar+" "+value)
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func row(label, value string) string {
	return LabelStyle.Render(label) + " " + value
}
