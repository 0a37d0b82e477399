package models

type Grade struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	SubjectID uint   `json:"subject_id" gorm:"index;not null"`
	Grade     int    `json:"grade" gorm:"not null"`         // 1..6
	Date      string `json:"date" gorm:"size:10;not null"`  // YYYY-MM-DD
	AddedByID uint   `json:"added_by_id" gorm:"index;not null"` // recorder: teacher/admin who entered it
}
