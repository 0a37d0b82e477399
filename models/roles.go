package models

// Closed role set. Every permission check goes through the route-group
// middleware; handlers never compare role strings themselves.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusExcused = "excused"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusExcused:
		return true
	}
	return false
}
