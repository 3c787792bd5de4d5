package model

import (
	"fmt"
	"strings"
)

const (
	Years   = 5 // Rows of a board
	Columns = 4 // Letter columns of a board

	DefaultLetters = "ABCD"
)

// Year is the grade level (1..5) and fixes the row of a section
type Year int

// Letter is the section letter and fixes the column of a section in fixed-slot mode
type Letter rune

func (letter Letter) String() string {
	if letter == 0 {
		return ""
	}
	return string(letter)
}

// Section identifies a class by its year and letter, e.g. "3C"
type Section struct {
	Year   Year
	Letter Letter
}

func (section Section) String() string {
	return fmt.Sprintf("%d%c", section.Year, section.Letter)
}

// Compare orders sections by identifier (year first, then letter)
func (section Section) Compare(other Section) int {
	if section.Year != other.Year {
		return int(section.Year) - int(other.Year)
	}
	return int(section.Letter) - int(other.Letter)
}

func (section Section) Less(other Section) bool {
	return section.Compare(other) < 0
}

// ParseSection parses labels of the form <digit 1-5><letter>, where the letter must belong to the given alphabet
func ParseSection(label string, letters string) (Section, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	runes := []rune(normalized)
	if len(runes) != 2 {
		return Section{}, InvalidClassLabelError{Label: label, Reason: "expected a year digit followed by a letter"}
	}

	year, letter := runes[0], runes[1]
	if year < '1' || year > '0'+Years {
		return Section{}, InvalidClassLabelError{Label: label, Reason: fmt.Sprintf("year must be between 1 and %d", Years)}
	}
	if !strings.ContainsRune(letters, letter) {
		return Section{}, InvalidClassLabelError{Label: label, Reason: fmt.Sprintf("letter must be one of %v", letters)}
	}

	return Section{Year: Year(year - '0'), Letter: Letter(letter)}, nil
}

// LooksLikeClassLabel reports whether header has the shape of a class label (digit followed by a letter),
// regardless of whether its year and letter are in range
func LooksLikeClassLabel(header string) bool {
	runes := []rune(strings.TrimSpace(header))
	if len(runes) != 2 {
		return false
	}
	digit, letter := runes[0], runes[1]
	return digit >= '0' && digit <= '9' && ((letter >= 'A' && letter <= 'Z') || (letter >= 'a' && letter <= 'z'))
}

func normalizeLetters(letters string) string {
	var builder strings.Builder
	for _, letter := range strings.ToUpper(letters) {
		if letter >= 'A' && letter <= 'Z' && !strings.ContainsRune(builder.String(), letter) {
			builder.WriteRune(letter)
		}
	}
	return builder.String()
}
