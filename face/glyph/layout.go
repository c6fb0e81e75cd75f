package glyph

// Spacing constants for the time string.
const (
	// Gap is the fixed spacing after every glyph except the last.
	Gap = 2
	// ColonWidth is the fixed width of the colon placeholder between
	// the hour and minute groups.
	ColonWidth = 8
)

// Kind distinguishes digit placements from the colon placeholder.
type Kind uint8

const (
	PlaceDigit Kind = iota
	PlaceColon
)

// Placement is one resolved glyph: which family, which value, and its
// top-left position relative to the string origin.
type Placement struct {
	Kind   Kind
	Family Family
	Digit  int // 0..9 for PlaceDigit, unused for PlaceColon
	X, Y   int
}

// Result is the ordered placement list plus the occupied box. The
// caller centers Width x Height on the display and draws the masking
// rectangle from the same box.
type Result struct {
	Placements []Placement
	Width      int
	Height     int
}

// Options select the time format and, optionally, a custom rule table.
type Options struct {
	TwentyFourHour bool
	Rules          []Rule // nil means DefaultRules
}

// Layout places the HH:MM string for the given wall-clock reading.
//
// hour must be 0..23 and minute 0..59; the wall clock guarantees the
// ranges, so they are not defended here. The function is total and
// deterministic over that domain.
func Layout(hour, minute int, opts Options) Result {
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules
	}

	if !opts.TwentyFourHour {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	hourField := Field{Role: RoleHour, Tens: hour / 10, Ones: hour % 10}
	hd := Classify(hourField, rules)

	minuteField := Field{
		Role:       RoleMinute,
		Tens:       minute / 10,
		Ones:       minute % 10,
		HourSingle: hd.TensAbsent,
	}
	md := Classify(minuteField, rules)

	placements := make([]Placement, 0, 5)
	x := 0

	digit := func(fam Family, d int) {
		placements = append(placements, Placement{Kind: PlaceDigit, Family: fam, Digit: d, X: x})
		x += fam.Width() + Gap
	}

	if !hd.TensAbsent {
		digit(hd.Tens, hourField.Tens)
	}
	digit(hd.Ones, hourField.Ones)

	placements = append(placements, Placement{Kind: PlaceColon, X: x})
	x += ColonWidth + Gap

	digit(md.Tens, minuteField.Tens)
	digit(md.Ones, minuteField.Ones)

	return Result{
		Placements: placements,
		Width:      x - Gap, // no gap after the last glyph
		Height:     Height,
	}
}
