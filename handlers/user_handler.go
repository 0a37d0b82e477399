package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/response"
	"github.com/michalswider/electronic-gradebook/validation"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler { return &UserHandler{} }

type createUserRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Username    string  `json:"username" validate:"required"`
	Password    string  `json:"password" validate:"required,min=6"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassID     *uint   `json:"class_id"`
	SubjectID   *uint   `json:"subject_id"`
	Role        string  `json:"role" validate:"required,min=4"`
}

type editUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1"`
	Username    *string `json:"username" validate:"omitempty,min=1"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassID     *uint   `json:"class_id"`
	SubjectID   *uint   `json:"subject_id"`
	Role        *string `json:"role"`
}

// POST /admin/add-user
func (h *UserHandler) Create(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := validation.UsernameAvailable(req.Username, actor); err != nil {
		return err
	}
	if req.ClassID != nil {
		if _, err := validation.ClassExists(*req.ClassID, actor); err != nil {
			return err
		}
	}
	if req.SubjectID != nil {
		if _, err := validation.SubjectExists(*req.SubjectID, actor); err != nil {
			return err
		}
	}
	if err := validation.ValidRole(req.Role, actor); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Username:       req.Username,
		HashedPassword: string(hashed),
		DateOfBirth:    req.DateOfBirth,
		ClassID:        req.ClassID,
		SubjectID:      req.SubjectID,
		Role:           req.Role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// GET /admin/students[?username=]
func (h *UserHandler) ListStudents(c echo.Context) error {
	actor := middlewares.ActingUsername(c)
	rows, err := validation.StudentRows(c.QueryParam("username"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.Students(rows))
}

// GET /admin/teachers[?username=]
func (h *UserHandler) ListTeachers(c echo.Context) error {
	actor := middlewares.ActingUsername(c)
	rows, err := validation.TeacherRows(c.QueryParam("username"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.Teachers(rows))
}

// PUT /admin/edit-user?username=
func (h *UserHandler) Edit(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Missing query parameter: username")
	}
	user, err := validation.UserByUsername(username, "all", actor)
	if err != nil {
		return err
	}

	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Username != nil {
		if err := validation.UsernameAvailable(*req.Username, actor); err != nil {
			return err
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.HashedPassword = string(hashed)
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.ClassID != nil {
		if _, err := validation.ClassExists(*req.ClassID, actor); err != nil {
			return err
		}
		user.ClassID = req.ClassID
	}
	if req.SubjectID != nil {
		if _, err := validation.SubjectExists(*req.SubjectID, actor); err != nil {
			return err
		}
		user.SubjectID = req.SubjectID
	}
	if req.Role != nil {
		if err := validation.ValidRole(*req.Role, actor); err != nil {
			return err
		}
		user.Role = *req.Role
	}

	if err := database.DB.Save(user).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /admin/delete-user/:id
func (h *UserHandler) Delete(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if _, err := validation.UserByID(id, actor); err != nil {
		return err
	}
	if err := validation.UserDeletable(id, actor); err != nil {
		return err
	}
	if err := database.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
