package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/config"
	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/handlers"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/routes"
)

const testSecret = "test-secret"

// newTestApp builds the app exactly as main does, backed by a fresh
// in-memory database.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	cfg := &config.Config{JWTSecret: testSecret, TokenTTL: 20 * time.Minute}

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = errs.HTTPErrorHandler
	routes.Register(e, cfg)
	return e
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func seedUser(t *testing.T, u models.User) models.User {
	t.Helper()
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", u.Username, err)
	}
	return u
}

func seedAdmin(t *testing.T) models.User {
	return seedUser(t, models.User{
		FirstName: "admin", LastName: "admin", Username: "admin",
		HashedPassword: hashPassword(t, "admin"), Role: models.RoleAdmin,
	})
}

func seedTeacher(t *testing.T, username string) models.User {
	return seedUser(t, models.User{
		FirstName: "Anna", LastName: "Kowalska", Username: username,
		HashedPassword: hashPassword(t, "teacher1"), Role: models.RoleTeacher,
	})
}

func seedStudent(t *testing.T, username string, classID *uint) models.User {
	return seedUser(t, models.User{
		FirstName: "Johny", LastName: "Bravo", Username: username,
		HashedPassword: hashPassword(t, "student1"), ClassID: classID, Role: models.RoleStudent,
	})
}

func seedClass(t *testing.T, name string) models.Class {
	t.Helper()
	c := models.Class{Name: name}
	if err := database.DB.Create(&c).Error; err != nil {
		t.Fatalf("seed class %s: %v", name, err)
	}
	return c
}

func seedSubject(t *testing.T, name string) models.Subject {
	t.Helper()
	s := models.Subject{Name: name}
	if err := database.DB.Create(&s).Error; err != nil {
		t.Fatalf("seed subject %s: %v", name, err)
	}
	return s
}

func seedGrade(t *testing.T, studentID, subjectID uint, value int, addedByID uint) models.Grade {
	t.Helper()
	g := models.Grade{
		StudentID: studentID, SubjectID: subjectID, Grade: value,
		Date: "2024-09-01", AddedByID: addedByID,
	}
	if err := database.DB.Create(&g).Error; err != nil {
		t.Fatalf("seed grade: %v", err)
	}
	return g
}

func seedAttendance(t *testing.T, studentID, subjectID uint, date, status string, addedByID uint) models.Attendance {
	t.Helper()
	a := models.Attendance{
		StudentID: studentID, SubjectID: subjectID,
		ClassDate: date, Status: status, AddedByID: addedByID,
	}
	if err := database.DB.Create(&a).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
	return a
}

func databaseFirstClass(out *models.Class, id uint) error {
	return database.DB.First(out, "id = ?", id).Error
}

func tokenFor(t *testing.T, u models.User) string {
	t.Helper()
	claims := middlewares.Claims{
		ID:   u.ID,
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doForm(t *testing.T, e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func errorDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &body)
	return body.Detail
}
