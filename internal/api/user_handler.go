package api

import (
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API ---

// FormValue binds from a form field, a JSON string, or a JSON number, so
// that `duration=30` and `{"duration": 30}` end up identical.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

// CreateUserRequest accepts form or JSON bodies.
type CreateUserRequest struct {
	Username FormValue `form:"username" json:"username"`
}

// CreateUserResponse is the `{ username, _id }` body returned on create.
type CreateUserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// --- Handler Methods ---

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "Unique username"
// @Success 200 {object} CreateUserResponse
// @Failure 400 {object} gin.H "Missing username"
// @Failure 409 {object} gin.H "Username already taken"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), string(req.Username))
	if err != nil {
		respondWithServiceError(c, "create user", err)
		return
	}

	metrics.UsersCreatedTotal.Inc()
	c.JSON(http.StatusOK, CreateUserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	})
}

// ListUsers godoc
// @Summary List all users
// @Description Returns every user document, exercises included.
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
