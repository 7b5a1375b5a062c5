package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userservice/internal/server/http/dto"
)

const (
	createUserObject = "createUserRequest"
	updateUserObject = "updateUserRequest"
)

// UserHandler manages /api/users endpoints.
type UserHandler struct {
	facade    UserFacade
	validator RequestValidator
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade, validator RequestValidator) *UserHandler {
	return &UserHandler{facade: facade, validator: validator}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// GetByUsername handles GET /api/users/username/:username.
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.facade.UserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// GetByEmail handles GET /api/users/email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.facade.UserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, malformedBody(err))
		return
	}
	if err := h.validator.Struct(createUserObject, req); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.ToUser())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(*user))
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, malformedBody(err))
		return
	}
	if err := h.validator.Struct(updateUserObject, req); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), id, req.ApplyTo)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// Delete handles DELETE /api/users/:id and responds with the removed user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := h.facade.DeleteUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

func userID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeBadRequest(c, fmt.Sprintf("invalid user id '%s'", raw))
		return 0, false
	}
	return id, true
}

func malformedBody(err error) string {
	return "malformed request body: " + err.Error()
}
