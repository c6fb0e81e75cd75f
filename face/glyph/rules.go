package glyph

// Role says which time field a digit pair belongs to.
type Role uint8

const (
	RoleHour Role = iota
	RoleMinute
)

// Field is one two-digit time field plus the context the rules may
// inspect: the sibling field's shape and nothing else.
type Field struct {
	Role Role
	Tens int // 0..9
	Ones int // 0..9

	// HourSingle reports that the hour group renders a single digit
	// this frame. Minute rules use it to balance total width.
	HourSingle bool
}

// tensAbsent: a zero tens digit is not rendered for the hour field.
// Minutes always show both digits.
func tensAbsent(f Field) bool {
	return f.Role == RoleHour && f.Tens == 0
}

// Decision is the classifier output for one field.
type Decision struct {
	Tens       Family
	Ones       Family
	TensAbsent bool
}

// Rule maps a field configuration to per-digit families. Rules are
// plain data so policies can be swapped without touching the layout
// algorithm.
type Rule struct {
	Name string
	When func(Field) bool
	Tens Family
	Ones Family
}

// FallbackFamily is used when no rule matches, making classification a
// total function.
const FallbackFamily = Least

// Classify walks rules in order; the first match wins.
func Classify(f Field, rules []Rule) Decision {
	d := Decision{Tens: FallbackFamily, Ones: FallbackFamily, TensAbsent: tensAbsent(f)}
	for i := range rules {
		r := &rules[i]
		if r.When != nil && r.When(f) {
			d.Tens = r.Tens
			d.Ones = r.Ones
			return d
		}
	}
	return d
}

// DefaultRules is the shipped precedence table. The exact order is a
// configuration choice, not a law: pass a different slice to Layout to
// experiment with other policies.
var DefaultRules = []Rule{
	{
		Name: "hour-single",
		When: func(f Field) bool { return f.Role == RoleHour && f.Tens == 0 },
		Tens: Priority, // not rendered
		Ones: Priority,
	},
	{
		Name: "equal-digits",
		When: func(f Field) bool { return f.Tens == f.Ones },
		Tens: Subpriority,
		Ones: Subpriority,
	},
	{
		Name: "hour-teens",
		When: func(f Field) bool { return f.Role == RoleHour && f.Tens == 1 },
		Tens: Least,
		Ones: Priority,
	},
	{
		Name: "hour-twenties",
		When: func(f Field) bool { return f.Role == RoleHour && f.Tens == 2 },
		Tens: MidPriority,
		Ones: MidPriority,
	},
	{
		Name: "minute-lead-zero",
		When: func(f Field) bool { return f.Role == RoleMinute && f.Tens == 0 && f.Ones > 0 },
		Tens: Lesser,
		Ones: Subpriority,
	},
	{
		Name: "minute-trail-zero",
		When: func(f Field) bool { return f.Role == RoleMinute && f.Ones == 0 && f.HourSingle },
		Tens: Subpriority,
		Ones: Least,
	},
	{
		Name: "two-digit-default",
		When: func(Field) bool { return true },
		Tens: Subpriority,
		Ones: Subpriority,
	},
}
