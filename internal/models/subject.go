package models

import (
	"strings"

	"github.com/studyapp/studygroup/internal/apperr"
)

// Subject is the closed set of categories a study group is organized around.
type Subject string

const (
	// SubjectMath is the mathematics subject.
	SubjectMath Subject = "Math"
	// SubjectChemistry is the chemistry subject.
	SubjectChemistry Subject = "Chemistry"
	// SubjectPhysics is the physics subject.
	SubjectPhysics Subject = "Physics"
)

// Subjects returns all valid subjects in declaration order.
func Subjects() []Subject {
	return []Subject{SubjectMath, SubjectChemistry, SubjectPhysics}
}

// ParseSubject resolves a subject token case-insensitively.
func ParseSubject(raw string) (Subject, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range Subjects() {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	return "", apperr.InvalidArgumentf("Invalid subject '%s'. Valid subjects are: %s.", raw, subjectList())
}

// IsValid reports whether the subject belongs to the closed set.
func (s Subject) IsValid() bool {
	switch s {
	case SubjectMath, SubjectChemistry, SubjectPhysics:
		return true
	default:
		return false
	}
}

// subjectList renders the valid subjects for error messages.
func subjectList() string {
	names := make([]string, 0, len(Subjects()))
	for _, s := range Subjects() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// String implements fmt.Stringer.
func (s Subject) String() string { return string(s) }
