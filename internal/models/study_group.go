package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/studyapp/studygroup/internal/apperr"
)

// Name length bounds for study groups.
const (
	StudyGroupNameMinLen = 5
	StudyGroupNameMaxLen = 30
)

// StudyGroup is a study group organized around a single subject.
type StudyGroup struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name    string  `gorm:"type:text;not null" json:"name"`                // Display name, 5..30 characters.
	Subject Subject `gorm:"type:text;not null;uniqueIndex" json:"subject"` // Subject; at most one group per subject.

	Members []User `gorm:"-" json:"members"` // Resolved members in join order.

	CreatedAt time.Time `gorm:"not null" json:"createdAt"` // Creation timestamp, immutable.
}

// ValidateStudyGroupName checks the trimmed name against the length bounds.
func ValidateStudyGroupName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperr.InvalidArgumentf("Study group name is required.")
	}
	if length := utf8.RuneCountInString(trimmed); length < StudyGroupNameMinLen || length > StudyGroupNameMaxLen {
		return apperr.InvalidArgumentf("Study group name must be between %d and %d characters.", StudyGroupNameMinLen, StudyGroupNameMaxLen)
	}
	return nil
}

// HasMember reports whether the user id is already in the member set.
func (g *StudyGroup) HasMember(userID uint64) bool {
	for _, u := range g.Members {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// AddUser appends the user to the member set. Adding an existing member
// is a no-op, so the operation is idempotent.
func (g *StudyGroup) AddUser(user *User) error {
	if user == nil {
		return apperr.InvalidArgumentf("user is required")
	}
	if g.HasMember(user.ID) {
		return nil
	}
	g.Members = append(g.Members, *user)
	return nil
}

// RemoveUser removes the member with the user's id. Removing an absent
// member is a no-op; the repository layer decides whether that is an error.
func (g *StudyGroup) RemoveUser(user *User) error {
	if user == nil {
		return apperr.InvalidArgumentf("user is required")
	}
	for i, u := range g.Members {
		if u.ID == user.ID {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return nil
		}
	}
	return nil
}
