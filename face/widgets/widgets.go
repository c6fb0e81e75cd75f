// Package widgets selects and sizes the corner status widgets: date
// numbers, day-of-week label, AM/PM letter, battery gauge, step gauge.
//
// Like the rest of the face core it is pure geometry and classification;
// drawing happens in face/render.
package widgets

import "fmt"

// Type enumerates the available corner widgets.
type Type uint8

const (
	None Type = iota
	MonthDate
	DayDate
	DayName
	AMPM
	Battery
	Steps
)

// Corner positions a widget.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
)

// Config assigns one widget per corner.
type Config struct {
	TopLeft  Type
	TopRight Type
}

// Geometry shared by the widget renderers.
const (
	Padding = 10 // distance from the display edges

	DateCellW = 20 // date digit atlas cell
	DateCellH = 14
	DateGap   = 4 // between two date digits

	GaugeW = 44 // battery and steps gauges
	GaugeH = 14

	AMPMW = 20
	AMPMH = 14

	labelAdvance = 6 // day-name glyph advance
)

// DefaultStepGoal is used when the settings record carries no goal.
const DefaultStepGoal = 10000

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case MonthDate:
		return "month"
	case DayDate:
		return "day"
	case DayName:
		return "dayname"
	case AMPM:
		return "ampm"
	case Battery:
		return "battery"
	case Steps:
		return "steps"
	}
	return "unknown"
}

// ParseType maps a flag value to a widget type.
func ParseType(s string) (Type, error) {
	for _, t := range []Type{None, MonthDate, DayDate, DayName, AMPM, Battery, Steps} {
		if t.String() == s {
			return t, nil
		}
	}
	return None, fmt.Errorf("widgets: unknown widget %q", s)
}

// BatteryFrame maps a charge percent onto gauge frames 0 (full) to
// 9 (empty) in 10% bands.
func BatteryFrame(percent int) int {
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	f := 9 - percent/10
	if f < 0 {
		f = 0
	}
	return f
}

// StepsFrame maps a step count against the goal onto gauge frames
// 0 (no progress) to 8 (goal met), one frame per ninth of the goal.
func StepsFrame(steps, goal int) int {
	if goal <= 0 {
		goal = DefaultStepGoal
	}
	if steps >= goal {
		return 8
	}
	if steps < 0 {
		return 0
	}
	f := steps*9/goal - 1
	if f < 0 {
		f = 0
	}
	return f
}

// DateDigits splits a calendar value into its rendered digits: one cell
// for 1-9, two cells for 10-31 (or 10-12 for months).
func DateDigits(v int) []int {
	if v < 10 {
		return []int{v}
	}
	return []int{v / 10, v % 10}
}

var dayTwo = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}
var dayThree = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// DayLabel returns the day-of-week label. weekday follows time.Weekday
// (0 = Sunday).
func DayLabel(weekday int, twoLetter bool) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	if twoLetter {
		return dayTwo[weekday]
	}
	return dayThree[weekday]
}

// IsPM reports the meridiem for a pre-conversion 24-hour reading.
func IsPM(hour int) bool {
	return hour >= 12
}

// Context carries the per-frame values a width calculation may need.
type Context struct {
	Month     int
	Day       int
	Weekday   int // 0 = Sunday
	TwoLetter bool
}

// Width returns the rendered width of a widget, used to right-align the
// top-right corner.
func Width(t Type, c Context) int {
	switch t {
	case MonthDate:
		return dateWidth(c.Month)
	case DayDate:
		return dateWidth(c.Day)
	case DayName:
		return len(DayLabel(c.Weekday, c.TwoLetter)) * labelAdvance
	case AMPM:
		return AMPMW
	case Battery, Steps:
		return GaugeW
	}
	return 0
}

func dateWidth(v int) int {
	if len(DateDigits(v)) == 1 {
		return DateCellW
	}
	return DateCellW*2 + DateGap
}
