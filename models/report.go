package models

import "fmt"

const notSpecified = "Not specified"

// Report is the formatted wage summary shown once a manager has approved.
type Report struct {
	EmployeeName  string `json:"employee_name"`
	ProjectName   string `json:"project_name"`
	HoursWorked   string `json:"hours_worked"`
	HoursLogged   string `json:"hours_logged"`
	OvertimeHours string `json:"overtime_hours"`
	HourlyRate    string `json:"hourly_rate"`
	TotalWage     string `json:"total_wage"`
}

// BuildReport returns false when the input is not approved; nothing should
// be rendered in that case.
func BuildReport(in WageInput, d WageDerivation) (Report, bool) {
	if !in.IsApproved() {
		return Report{}, false
	}
	return Report{
		EmployeeName:  in.EmployeeName,
		ProjectName:   in.ProjectName,
		HoursWorked:   FormatNumber(in.HoursWorked),
		HoursLogged:   FormatNumber(in.HoursLogged),
		OvertimeHours: FormatNumber(d.OvertimeHours),
		HourlyRate:    "$" + FormatNumber(in.HourlyRate),
		TotalWage:     FormatMoney(d.TotalWage),
	}, true
}

func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("Employee Name: %s", r.EmployeeName),
		fmt.Sprintf("Project Name: %s", r.ProjectName),
		fmt.Sprintf("Hours Worked: %s", r.HoursWorked),
		fmt.Sprintf("Hours Logged: %s", r.HoursLogged),
		fmt.Sprintf("Overtime Hours: %s", r.OvertimeHours),
		fmt.Sprintf("Hourly Rate: %s", r.HourlyRate),
		fmt.Sprintf("Total Wage: %s", r.TotalWage),
	}
}

type ProjectDetails struct {
	Employee       string `json:"employee"`
	Project        string `json:"project"`
	Approved       bool   `json:"approved"`
	ApprovalStatus string `json:"approval_status"`
}

func BuildProjectDetails(in WageInput) ProjectDetails {
	details := ProjectDetails{
		Employee:       orNotSpecified(in.EmployeeName),
		Project:        orNotSpecified(in.ProjectName),
		Approved:       in.IsApproved(),
		ApprovalStatus: "Not Approved",
	}
	if details.Approved {
		details.ApprovalStatus = "Approved"
	}
	return details
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}
