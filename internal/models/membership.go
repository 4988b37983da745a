package models

// StudyGroupMember is one row of the group/user membership relation. The
// relation has no attributes; the surrogate ID only fixes the join order
// so member listings stay deterministic.
type StudyGroupMember struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Insertion order.

	StudyGroupID uint64 `gorm:"not null;index;uniqueIndex:idx_study_group_members_pair"` // Owning group.
	UserID       uint64 `gorm:"not null;uniqueIndex:idx_study_group_members_pair"`       // Member user.
}
