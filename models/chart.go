package models

import "fmt"

// ChartColors are assigned to segments in order, wrapping around.
var ChartColors = []string{"#0088FE", "#00C49F", "#FFBB28"}

type ChartPoint struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

func (p ChartPoint) PercentLabel() string {
	return fmt.Sprintf("%.0f%%", p.Percent)
}

type ChartData struct {
	Title  string       `json:"title"`
	Points []ChartPoint `json:"points"`
}

func HoursComparison(in WageInput) ChartData {
	return newChartData("Hours Comparison",
		ChartPoint{Label: "Hours Worked", Value: in.HoursWorked},
		ChartPoint{Label: "Hours Logged", Value: in.HoursLogged},
	)
}

func OvertimeBreakdown(in WageInput, d WageDerivation) ChartData {
	return newChartData("Overtime Breakdown",
		ChartPoint{Label: "Regular Hours", Value: in.HoursWorked},
		ChartPoint{Label: "Overtime Hours", Value: d.OvertimeHours},
	)
}

func (c ChartData) Total() float64 {
	var total float64
	for _, p := range c.Points {
		total += p.Value
	}
	return total
}

func (c ChartData) Max() float64 {
	var max float64
	for _, p := range c.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// Scale maps v onto [0, width] relative to the largest value in the dataset.
func (c ChartData) Scale(v float64, width int) int {
	max := c.Max()
	if max <= 0 || width <= 0 {
		return 0
	}
	n := int(v / max * float64(width))
	if n > width {
		return width
	}
	return n
}

func newChartData(title string, points ...ChartPoint) ChartData {
	data := ChartData{Title: title, Points: points}
	total := data.Total()
	for i := range data.Points {
		data.Points[i].Color = ChartColors[i%len(ChartColors)]
		if total > 0 {
			data.Points[i].Percent = data.Points[i].Value / total * 100
		}
	}
	return data
}
