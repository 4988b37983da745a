// Package repository owns all group, user, and membership state and is
// the sole enforcer of cross-entity invariants.
package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/studyapp/studygroup/internal/apperr"
	"github.com/studyapp/studygroup/internal/db"
	"github.com/studyapp/studygroup/internal/models"
	"gorm.io/gorm"
)

// StudyGroupRepository persists study groups and memberships via GORM.
// Mutations that touch the one-group-per-subject invariant or a member
// set run inside a transaction; the unique indexes on subject and
// (study_group_id, user_id) backstop races the store-level checks
// cannot see. SQLite has a single writer, so its mutations are
// additionally serialized through the mutex.
type StudyGroupRepository struct {
	db        *gorm.DB
	serialize bool

	mu sync.Mutex
}

// NewStudyGroupRepository constructs a StudyGroupRepository.
func NewStudyGroupRepository(conn *gorm.DB) *StudyGroupRepository {
	return &StudyGroupRepository{db: conn, serialize: db.IsSQLite(conn)}
}

// Create validates the candidate, enforces subject uniqueness, and
// persists the group with an assigned id and creation timestamp.
func (r *StudyGroupRepository) Create(ctx context.Context, name string, subject models.Subject) (*models.StudyGroup, error) {
	if err := models.ValidateStudyGroupName(name); err != nil {
		return nil, err
	}
	if !subject.IsValid() {
		canonical, errParse := models.ParseSubject(string(subject))
		if errParse != nil {
			return nil, errParse
		}
		subject = canonical
	}

	if r.serialize {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	group := models.StudyGroup{
		Name:      strings.TrimSpace(name),
		Subject:   subject,
		Members:   []models.User{},
		CreatedAt: time.Now().UTC(),
	}

	errTx := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if errCount := tx.Model(&models.StudyGroup{}).Where("subject = ?", subject).Count(&count).Error; errCount != nil {
			return apperr.Unexpected("An error occurred while creating the study group.", errCount)
		}
		if count > 0 {
			return apperr.Conflictf("A study group for subject '%s' already exists.", subject)
		}
		return tx.Create(&group).Error
	})
	if errTx != nil {
		return nil, classifyCreateError(errTx, subject)
	}
	return &group, nil
}

// classifyCreateError maps a create failure to the taxonomy, treating a
// unique index violation on subject as the same conflict as the
// existence pre-check.
func classifyCreateError(err error, subject models.Subject) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if isUniqueViolation(err) {
		return apperr.Conflictf("A study group for subject '%s' already exists.", subject)
	}
	return apperr.Unexpected("An error occurred while creating the study group.", err)
}

// List returns groups matching the optional subject filter, ordered by
// creation date. "asc"/"oldest" sorts oldest first; "desc"/"newest",
// empty, or any unrecognized token sorts newest first. Ties on the
// timestamp keep insertion order.
func (r *StudyGroupRepository) List(ctx context.Context, subjectFilter, sortOrder string) ([]models.StudyGroup, error) {
	q := r.db.WithContext(ctx).Model(&models.StudyGroup{})

	if strings.TrimSpace(subjectFilter) != "" {
		subject, errParse := models.ParseSubject(subjectFilter)
		if errParse != nil {
			return nil, errParse
		}
		q = q.Where("subject = ?", subject)
	}

	groups := make([]models.StudyGroup, 0)
	if errFind := q.Order(orderClause(sortOrder)).Find(&groups).Error; errFind != nil {
		return nil, apperr.Unexpected("An error occurred while retrieving study groups.", errFind)
	}

	for i := range groups {
		members, errMembers := r.loadMembers(ctx, r.db, groups[i].ID)
		if errMembers != nil {
			return nil, errMembers
		}
		groups[i].Members = members
	}
	return groups, nil
}

// orderClause resolves a sort-order token into a deterministic ordering.
func orderClause(sortOrder string) string {
	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case "asc", "oldest":
		return "created_at ASC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// GetByID returns the group with its resolved member list.
func (r *StudyGroupRepository) GetByID(ctx context.Context, id uint64) (*models.StudyGroup, error) {
	var group models.StudyGroup
	if errFind := r.db.WithContext(ctx).First(&group, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Study group with ID %d not found.", id)
		}
		return nil, apperr.Unexpected("An error occurred while retrieving the study group.", errFind)
	}

	members, errMembers := r.loadMembers(ctx, r.db, group.ID)
	if errMembers != nil {
		return nil, errMembers
	}
	group.Members = members
	return &group, nil
}

// GetBySubject returns the group for a subject with its member list.
func (r *StudyGroupRepository) GetBySubject(ctx context.Context, subject models.Subject) (*models.StudyGroup, error) {
	var group models.StudyGroup
	if errFind := r.db.WithContext(ctx).Where("subject = ?", subject).First(&group).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Study group for subject '%s' not found.", subject)
		}
		return nil, apperr.Unexpected("An error occurred while retrieving the study group.", errFind)
	}

	members, errMembers := r.loadMembers(ctx, r.db, group.ID)
	if errMembers != nil {
		return nil, errMembers
	}
	group.Members = members
	return &group, nil
}

// Join adds the user to the group's member set. Joining a group the user
// already belongs to is a conflict, not an idempotent no-op, because the
// caller asked for a state change.
func (r *StudyGroupRepository) Join(ctx context.Context, groupID, userID uint64) error {
	if r.serialize {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	errTx := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group models.StudyGroup
		if errFind := tx.First(&group, groupID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Study group with ID %d not found.", groupID)
			}
			return apperr.Unexpected("An error occurred while joining the study group.", errFind)
		}

		var user models.User
		if errFind := tx.First(&user, userID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("User with ID %d not found.", userID)
			}
			return apperr.Unexpected("An error occurred while joining the study group.", errFind)
		}

		members, errMembers := r.loadMembers(ctx, tx, group.ID)
		if errMembers != nil {
			return errMembers
		}
		group.Members = members
		if group.HasMember(userID) {
			return apperr.Conflictf("User %d is already a member of study group %d.", userID, groupID)
		}
		if errAdd := group.AddUser(&user); errAdd != nil {
			return errAdd
		}

		row := models.StudyGroupMember{StudyGroupID: groupID, UserID: userID}
		if errCreate := tx.Create(&row).Error; errCreate != nil {
			if isUniqueViolation(errCreate) {
				return apperr.Conflictf("User %d is already a member of study group %d.", userID, groupID)
			}
			return apperr.Unexpected("An error occurred while joining the study group.", errCreate)
		}
		return nil
	})
	return errTx
}

// Leave removes the user from the group's member set. Leaving a group
// the user never joined is rejected so the caller learns the removal
// meant nothing.
func (r *StudyGroupRepository) Leave(ctx context.Context, groupID, userID uint64) error {
	if r.serialize {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	errTx := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group models.StudyGroup
		if errFind := tx.First(&group, groupID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Study group with ID %d not found.", groupID)
			}
			return apperr.Unexpected("An error occurred while leaving the study group.", errFind)
		}

		res := tx.Where("study_group_id = ? AND user_id = ?", groupID, userID).Delete(&models.StudyGroupMember{})
		if res.Error != nil {
			return apperr.Unexpected("An error occurred while leaving the study group.", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.InvalidArgumentf("User %d is not a member of study group %d.", userID, groupID)
		}
		return nil
	})
	return errTx
}

// Delete removes the group and all its memberships.
func (r *StudyGroupRepository) Delete(ctx context.Context, id uint64) error {
	if r.serialize {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	errTx := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errMembers := tx.Where("study_group_id = ?", id).Delete(&models.StudyGroupMember{}).Error; errMembers != nil {
			return apperr.Unexpected("An error occurred while deleting the study group.", errMembers)
		}
		res := tx.Delete(&models.StudyGroup{}, id)
		if res.Error != nil {
			return apperr.Unexpected("An error occurred while deleting the study group.", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFoundf("Study group with ID %d not found.", id)
		}
		return nil
	})
	return errTx
}

// loadMembers resolves a group's members ordered by join insertion.
func (r *StudyGroupRepository) loadMembers(ctx context.Context, tx *gorm.DB, groupID uint64) ([]models.User, error) {
	members := make([]models.User, 0)
	errFind := tx.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN study_group_members ON study_group_members.user_id = users.id").
		Where("study_group_members.study_group_id = ?", groupID).
		Order("study_group_members.id ASC").
		Find(&members).Error
	if errFind != nil {
		return nil, apperr.Unexpected("An error occurred while resolving study group members.", errFind)
	}
	return members, nil
}

// isUniqueViolation reports whether err is a unique constraint failure
// on either supported dialect.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
