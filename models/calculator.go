package models

// Listener is called after every committed change with the new snapshot.
type Listener func(WageInput, WageDerivation)

// Calculator holds one session's WageInput. All mutation goes through its
// setters, each of which recomputes the derivation before notifying
// listeners, so the derived values always match the latest input.
type Calculator struct {
	input      WageInput
	derivation WageDerivation
	listeners  []Listener
}

func NewCalculator() *Calculator {
	c := &Calculator{input: DefaultWageInput()}
	c.derivation = Derive(c.input)
	return c
}

// Restore rebuilds a calculator from untrusted input, e.g. a decoded
// session. Fields are normalized with the same sanitize and clamp rules as
// the setters; listeners are not notified.
func Restore(in WageInput) *Calculator {
	c := NewCalculator()
	c.input.EmployeeName = TrimName(in.EmployeeName)
	c.input.ProjectName = TrimName(in.ProjectName)
	c.input.HoursLogged = sanitizeHours(in.HoursLogged)
	c.input.HoursWorked = clampWorked(in.HoursWorked, c.input.HoursLogged)
	if IsAllowedRate(in.HourlyRate) {
		c.input.HourlyRate = in.HourlyRate
	}
	if in.Approval == ApprovalYes {
		c.input.Approval = ApprovalYes
	}
	c.derivation = Derive(c.input)
	return c
}

func (c *Calculator) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Calculator) Input() WageInput {
	return c.input
}

func (c *Calculator) Derivation() WageDerivation {
	return c.derivation
}

func (c *Calculator) SetEmployeeName(name string) {
	c.input.EmployeeName = TrimName(name)
	c.commit()
}

func (c *Calculator) SetProjectName(name string) {
	c.input.ProjectName = TrimName(name)
	c.commit()
}

// SetHoursLogged coerces invalid values to 0. If the new total is below the
// current worked hours, worked hours are pulled down with it.
func (c *Calculator) SetHoursLogged(hours float64) {
	c.input.HoursLogged = sanitizeHours(hours)
	c.input.HoursWorked = clampWorked(c.input.HoursWorked, c.input.HoursLogged)
	c.commit()
}

// SetHoursWorked clamps hours into [0, HoursLogged] and returns the value
// actually stored.
func (c *Calculator) SetHoursWorked(hours float64) float64 {
	c.input.HoursWorked = clampWorked(hours, c.input.HoursLogged)
	c.commit()
	return c.input.HoursWorked
}

func (c *Calculator) SetHourlyRate(rate float64) error {
	if !IsAllowedRate(rate) {
		return ErrRateNotAllowed
	}
	c.input.HourlyRate = rate
	c.commit()
	return nil
}

func (c *Calculator) SetApproval(a Approval) error {
	if a != ApprovalYes && a != ApprovalNo {
		return ErrInvalidApproval
	}
	c.input.Approval = a
	c.commit()
	return nil
}

func (c *Calculator) SetHoursLoggedText(s string) {
	c.SetHoursLogged(ParseHours(s))
}

func (c *Calculator) SetHoursWorkedText(s string) float64 {
	return c.SetHoursWorked(ParseHours(s))
}

func (c *Calculator) SetHourlyRateText(s string) error {
	rate, err := ParseRate(s)
	if err != nil {
		return err
	}
	return c.SetHourlyRate(rate)
}

func (c *Calculator) SetApprovalText(s string) error {
	a, err := ParseApproval(s)
	if err != nil {
		return err
	}
	return c.SetApproval(a)
}

func (c *Calculator) commit() {
	c.derivation = Derive(c.input)
	for _, l := range c.listeners {
		l(c.input, c.derivation)
	}
}

func clampWorked(worked, logged float64) float64 {
	worked = sanitizeHours(worked)
	if worked > logged {
		return logged
	}
	return worked
}
