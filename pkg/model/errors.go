package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type InvalidClassLabelError struct {
	Label  string
	Reason string
}

func (err InvalidClassLabelError) Error() string {
	return fmt.Sprintf("invalid class label %q: %v", err.Label, err.Reason)
}

type EmptyRosterError struct{}

func (err EmptyRosterError) Error() string {
	return "roster is empty: no teacher is assigned to any valid class"
}

// UnsatisfiableError is returned in strict free-assignment mode when some years admit no conflict-free selection
type UnsatisfiableError struct {
	Years     []Year
	Conflicts []ConflictEdge // Conflicts of the best-effort selection of each failing year
}

func (err UnsatisfiableError) Error() string {
	years := lo.Map(err.Years, func(year Year, _ int) string { return fmt.Sprint(year) })
	return fmt.Sprintf("no conflict-free arrangement exists for year(s) %v", strings.Join(years, ", "))
}
