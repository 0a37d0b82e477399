package models

type Attendance struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	SubjectID uint   `json:"subject_id" gorm:"index;not null"`
	ClassDate string `json:"class_date" gorm:"size:10;not null"` // YYYY-MM-DD
	Status    string `json:"status" gorm:"size:20;not null"`     // present | absent | excused
	AddedByID uint   `json:"added_by_id" gorm:"index;not null"`
}

func (Attendance) TableName() string { return "attendance" }
