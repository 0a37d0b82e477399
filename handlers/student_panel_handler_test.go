package handlers_test

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/models"
)

func TestStudentProfile(t *testing.T) {
	e := newTestApp(t)
	class := seedClass(t, "1A")
	student := seedStudent(t, "j_bravo", &class.ID)

	rec := doJSON(t, e, http.MethodGet, "/student/profile", tokenFor(t, student), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["username"] != "j_bravo" || body["class"] != "1A" || body["role"] != models.RoleStudent {
		t.Errorf("profile = %v", body)
	}
	if _, ok := body["hashed_password"]; ok {
		t.Error("profile leaks hashed_password")
	}
	if _, ok := body["id"]; ok {
		t.Error("profile leaks internal id")
	}
}

func TestStudentProfileNoClass(t *testing.T) {
	e := newTestApp(t)
	student := seedStudent(t, "j_bravo", nil)

	rec := doJSON(t, e, http.MethodGet, "/student/profile", tokenFor(t, student), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["class"] != "No class assigned" {
		t.Errorf("class = %v, want No class assigned", body["class"])
	}
}

func TestResetPassword(t *testing.T) {
	e := newTestApp(t)
	student := seedStudent(t, "j_bravo", nil) // password student1

	rec := doJSON(t, e, http.MethodPut, "/student/reset-password", tokenFor(t, student),
		map[string]string{"old_password": "student1", "new_password": "brandnew"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	var saved models.User
	database.DB.First(&saved, "id = ?", student.ID)
	if bcrypt.CompareHashAndPassword([]byte(saved.HashedPassword), []byte("brandnew")) != nil {
		t.Error("new password does not verify against stored hash")
	}
}

func TestResetPasswordWrongOldPassword(t *testing.T) {
	e := newTestApp(t)
	student := seedStudent(t, "j_bravo", nil)

	rec := doJSON(t, e, http.MethodPut, "/student/reset-password", tokenFor(t, student),
		map[string]string{"old_password": "wrong", "new_password": "brandnew"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
	if d := errorDetail(t, rec); d != "Error on password change" {
		t.Errorf("detail = %q", d)
	}

	// The stored hash is untouched after the refused change.
	var saved models.User
	database.DB.First(&saved, "id = ?", student.ID)
	if bcrypt.CompareHashAndPassword([]byte(saved.HashedPassword), []byte("student1")) != nil {
		t.Error("stored hash changed despite refused reset")
	}
}

func TestResetPasswordShortNewPassword(t *testing.T) {
	e := newTestApp(t)
	student := seedStudent(t, "j_bravo", nil)

	rec := doJSON(t, e, http.MethodPut, "/student/reset-password", tokenFor(t, student),
		map[string]string{"old_password": "student1", "new_password": "abc"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d, want 422", rec.Code)
	}
}

func TestStudentGradesOwnRecordsOnly(t *testing.T) {
	e := newTestApp(t)
	teacher := seedTeacher(t, "a_kowalska")
	student := seedStudent(t, "j_bravo", nil)
	other := seedStudent(t, "m_curie", nil)
	subject := seedSubject(t, "Math")
	seedGrade(t, student.ID, subject.ID, 5, teacher.ID)
	seedGrade(t, other.ID, subject.ID, 2, teacher.ID)

	rec := doJSON(t, e, http.MethodGet, "/student/grades", tokenFor(t, student), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var grouped map[string][]map[string]any
	decodeBody(t, rec, &grouped)
	entries := grouped["Math"]
	if len(entries) != 1 {
		t.Fatalf("grouped = %v, want only the caller's grade", grouped)
	}
	if entries[0]["grade"].(float64) != 5 {
		t.Errorf("grade = %v, want 5", entries[0]["grade"])
	}
	if _, ok := entries[0]["id"]; ok {
		t.Error("student panel leaks grade row ids")
	}
}

func TestStudentGradesEmpty(t *testing.T) {
	e := newTestApp(t)
	student := seedStudent(t, "j_bravo", nil)

	rec := doJSON(t, e, http.MethodGet, "/student/grades", tokenFor(t, student), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
	if d := errorDetail(t, rec); d != "Not found" {
		t.Errorf("detail = %q, want the id-free Not found", d)
	}
}

func TestStudentAttendanceOwnRecordsOnly(t *testing.T) {
	e := newTestApp(t)
	teacher := seedTeacher(t, "a_kowalska")
	student := seedStudent(t, "j_bravo", nil)
	other := seedStudent(t, "m_curie", nil)
	subject := seedSubject(t, "Math")
	seedAttendance(t, student.ID, subject.ID, "2024-09-01", models.StatusPresent, teacher.ID)
	seedAttendance(t, other.ID, subject.ID, "2024-09-01", models.StatusAbsent, teacher.ID)

	rec := doJSON(t, e, http.MethodGet, "/student/attendance", tokenFor(t, student), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var grouped map[string][]map[string]any
	decodeBody(t, rec, &grouped)
	entries := grouped["Math"]
	if len(entries) != 1 || entries[0]["status"] != models.StatusPresent {
		t.Errorf("grouped = %v", grouped)
	}
}

func TestStudentPanelClosedToTeachers(t *testing.T) {
	e := newTestApp(t)
	teacher := seedTeacher(t, "a_kowalska")

	rec := doJSON(t, e, http.MethodGet, "/student/profile", tokenFor(t, teacher), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
	if d := errorDetail(t, rec); d != "Permission Denied" {
		t.Errorf("detail = %q", d)
	}
}
