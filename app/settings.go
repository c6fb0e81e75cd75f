package app

import (
	"fiftyeight/face/render"
	"fiftyeight/face/widgets"
)

// Settings holds the user-facing configuration of the face.
type Settings struct {
	DarkMode           bool
	TwentyFourHour     bool
	TwoLetterDay       bool
	ShowSecondDot      bool
	ShowHourMinuteDots bool
	StepGoal           int
	TopLeft            widgets.Type
	TopRight           widgets.Type
}

// DefaultSettings matches a freshly installed face.
func DefaultSettings() Settings {
	return Settings{
		ShowHourMinuteDots: true,
		StepGoal:           widgets.DefaultStepGoal,
		TopLeft:            widgets.DayDate,
		TopRight:           widgets.Battery,
	}
}

func (s Settings) renderOptions() render.Options {
	return render.Options{
		DarkMode:           s.DarkMode,
		TwentyFourHour:     s.TwentyFourHour,
		TwoLetterDay:       s.TwoLetterDay,
		ShowSecondDot:      s.ShowSecondDot,
		ShowHourMinuteDots: s.ShowHourMinuteDots,
		StepGoal:           s.StepGoal,
		Widgets: widgets.Config{
			TopLeft:  s.TopLeft,
			TopRight: s.TopRight,
		},
	}
}

// widgetCycle is the order the simulator steps through when cycling a
// corner widget.
var widgetCycle = []widgets.Type{
	widgets.None,
	widgets.MonthDate,
	widgets.DayDate,
	widgets.DayName,
	widgets.AMPM,
	widgets.Battery,
	widgets.Steps,
}

func nextWidget(t widgets.Type) widgets.Type {
	for i, w := range widgetCycle {
		if w == t {
			return widgetCycle[(i+1)%len(widgetCycle)]
		}
	}
	return widgetCycle[0]
}
