package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/user"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/logger"
)

// UserHandler translates HTTP requests into service calls. It is stateless;
// the struct only carries dependencies.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /users.
//
// The checks run in a fixed order and stop at the first failure: email
// present, full name present, email not already registered, password long
// enough, password confirmed. When several conditions fail at once, only
// the first one is reported.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validation.Validate(req.Email,
		validation.Required.Error("email is required"),
	); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validation.Validate(req.FullName,
		validation.Required.Error("full name is required"),
	); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	// Uniqueness pre-check. Not atomic with the insert below: a concurrent
	// registration for the same email can slip past both checks.
	exists, err := h.service.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if exists {
		response.EmailTaken(c, "Email already taken")
		return
	}

	if err := validation.Validate(req.Password,
		validation.Required.Error("password must be at least 8 characters"),
		validation.Length(8, 0).Error("password must be at least 8 characters"),
	); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		response.ValidationError(c, "passwords do not match")
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.FullName); err != nil {
		logger.Error("register user", err)
		response.Unprocessable(c, "Could not create user")
		return
	}

	// No user payload is echoed back.
	response.Success(c, http.StatusCreated, "User registered successfully", nil)
}

// Login handles POST /users/login. Unknown email and wrong password produce
// the exact same response so the endpoint reveals nothing about which
// emails are registered.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if _, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", nil)
}

// List handles GET /users?offset&limit.
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	users, err := h.service.List(c.Request.Context(), offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	dtos := make([]user.UserDTO, len(users))
	for i := range users {
		dtos[i] = users[i].ToDTO()
	}

	response.Success(c, http.StatusOK, "Users retrieved successfully", dtos)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid user id")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", u.ToDTO())
}

// Update handles PUT /users/:id. Email and full name only; the password is
// left untouched by this path.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid user id")
		return
	}

	current, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	// Re-check uniqueness only when the email actually changes; keeping
	// the current email is always allowed.
	if req.Email != current.Email {
		exists, err := h.service.EmailExists(c.Request.Context(), req.Email)
		if err != nil {
			h.handleError(c, err)
			return
		}
		if exists {
			response.EmailTaken(c, "Email already taken")
			return
		}
	}

	if err := h.service.Update(c.Request.Context(), id, req.Email, req.FullName); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Unprocessable(c, "User not found")
			return
		}
		logger.Error("update user", err)
		response.Unprocessable(c, "Could not update user")
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", nil)
}

// Delete handles DELETE /users/:id. Deleting an already-deleted user fails
// because the row no longer exists.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid user id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Unprocessable(c, "User not found")
			return
		}
		logger.Error("delete user", err)
		response.Unprocessable(c, "Could not delete user")
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

// ChangePassword handles POST /users/:id/change-password. The endpoint is
// intentionally unfinished and always reports so.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	response.NotImplemented(c, "Change password is not implemented")
}

// handleError maps domain errors to HTTP responses. Anything it does not
// recognize falls through to a 500 without being swallowed.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.Unprocessable(c, "User not found")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unprocessable(c, "Invalid email or password")
	case errors.Is(err, user.ErrEmailAlreadyTaken):
		response.EmailTaken(c, "Email already taken")
	default:
		logger.Error("unhandled error", err)
		response.InternalServerError(c, "Internal server error")
	}
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset = 0
	limit = 20

	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	return offset, limit
}
