package models

type User struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	FirstName      string  `json:"first_name" gorm:"size:50;not null"`
	LastName       string  `json:"last_name" gorm:"size:50;not null"`
	Username       string  `json:"username" gorm:"uniqueIndex;size:60;not null"`
	HashedPassword string  `json:"-" gorm:"not null"` // bcrypt hash
	DateOfBirth    *string `json:"date_of_birth,omitempty" gorm:"size:10"` // YYYY-MM-DD
	ClassID        *uint   `json:"class_id,omitempty" gorm:"index"`        // students only
	SubjectID      *uint   `json:"subject_id,omitempty" gorm:"index"`      // teachers only
	Role           string  `json:"role" gorm:"size:20;not null"`           // admin | teacher | student
}
