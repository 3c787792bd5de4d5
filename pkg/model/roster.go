package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Teacher string

// Row is a single input record: a teacher and the labels of the classes it is assigned to
type Row struct {
	Teacher string
	Classes []string
}

// Roster is the bidirectional teacher/section index every later stage reads from.
// Sections and Teachers keep first-seen input order, which the solvers rely on for tie-breaks.
type Roster struct {
	Letters         string
	Sections        []Section
	Teachers        []Teacher
	SectionTeachers map[Section][]Teacher
	TeacherSections map[Teacher][]Section
}

type rosterConfig struct {
	letters string
	classes []string
}

type RosterOption func(*rosterConfig)

// WithLetters sets the accepted letter alphabet (DefaultLetters otherwise)
func WithLetters(letters string) RosterOption {
	return func(config *rosterConfig) {
		if normalized := normalizeLetters(letters); normalized != "" {
			config.letters = normalized
		}
	}
}

// WithClasses declares class labels (usually the input headers) that exist even if no teacher is assigned to them
func WithClasses(labels ...string) RosterOption {
	return func(config *rosterConfig) {
		config.classes = append(config.classes, labels...)
	}
}

func BuildRoster(rows []Row, options ...RosterOption) (Roster, error) {
	config := rosterConfig{letters: DefaultLetters}
	for _, option := range options {
		option(&config)
	}

	roster := Roster{
		Letters:         config.letters,
		Sections:        make([]Section, 0),
		Teachers:        make([]Teacher, 0),
		SectionTeachers: make(map[Section][]Teacher),
		TeacherSections: make(map[Teacher][]Section),
	}

	addSection := func(section Section) {
		if _, ok := roster.SectionTeachers[section]; !ok {
			roster.Sections = append(roster.Sections, section)
			roster.SectionTeachers[section] = make([]Teacher, 0)
		}
	}

	//** Declared classes
	for _, label := range config.classes {
		section, err := ParseSection(label, config.letters)
		if err != nil {
			return Roster{}, err
		}
		addSection(section)
	}

	//** Teacher-class pairs
	pairs := 0
	for _, row := range rows {
		teacher := Teacher(strings.TrimSpace(row.Teacher))

		for _, label := range row.Classes {
			section, err := ParseSection(label, config.letters)
			if err != nil {
				return Roster{}, err
			}
			addSection(section)

			if teacher == "" {
				continue
			}
			if _, ok := roster.TeacherSections[teacher]; !ok {
				roster.Teachers = append(roster.Teachers, teacher)
				roster.TeacherSections[teacher] = make([]Section, 0)
			}
			// Repeated pairs are merged
			if slices.Contains(roster.TeacherSections[teacher], section) {
				continue
			}
			roster.TeacherSections[teacher] = append(roster.TeacherSections[teacher], section)
			roster.SectionTeachers[section] = append(roster.SectionTeachers[section], teacher)
			pairs++
		}
	}

	if pairs == 0 {
		return Roster{}, EmptyRosterError{}
	}

	return roster, nil
}

func (roster Roster) TeachersOf(section Section) []Teacher {
	return roster.SectionTeachers[section]
}

func (roster Roster) SectionsOf(teacher Teacher) []Section {
	return roster.TeacherSections[teacher]
}

func (roster Roster) Has(section Section) bool {
	_, ok := roster.SectionTeachers[section]
	return ok
}

// SectionsOfYear returns the sections of the year in input order
func (roster Roster) SectionsOfYear(year Year) []Section {
	return lo.Filter(roster.Sections, func(section Section, _ int) bool { return section.Year == year })
}

// PresentLetters returns the letters used by at least one section, sorted
func (roster Roster) PresentLetters() []Letter {
	letters := lo.Uniq(lo.Map(roster.Sections, func(section Section, _ int) Letter { return section.Letter }))
	slices.Sort(letters)
	return letters
}
