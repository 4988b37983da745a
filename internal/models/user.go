package models

// User is a participant who can join study groups. Users are seeded at
// startup; the API does not create them.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name  string `gorm:"type:text;not null" json:"name"`  // Display name.
	Email string `gorm:"type:text;not null" json:"email"` // Email address.
}
