package record

import "strings"

// Annotation marks a token may end with.
const (
	KillMark = "!"
	MaimMark = "*"

	marks = KillMark + MaimMark
)

// Tally holds the annotation counts carried by one token.
type Tally struct {
	Kills int
	Maims int
}

// BareName strips surrounding whitespace and any trailing run of annotation marks.
func BareName(token string) string {
	return strings.TrimRight(strings.TrimSpace(token), marks)
}

// CountMarks counts annotation marks in the unstripped token.
func CountMarks(token string) Tally {
	return Tally{
		Kills: strings.Count(token, KillMark),
		Maims: strings.Count(token, MaimMark),
	}
}
