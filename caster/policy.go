package caster

//go:generate go tool stringer -type=PolicyEnum -output=policy_string.go

// PolicyEnum selects what happens to a source field with no matching
// declared field on the target.
type PolicyEnum int

const (
	PolicyThrow         PolicyEnum = iota // reject the whole cast on the first unmatched field
	PolicyIgnore                          // drop unmatched fields
	PolicyDynamicAssign                   // collect unmatched fields into the target's overflow field; degrades to ignore with a diagnostic when none is declared

	// PolicyTotal is a constant that represents the total number of policies defined
	PolicyTotal = int(iota)
)
