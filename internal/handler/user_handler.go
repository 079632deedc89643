package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/internal/dto"
	"github.com/reseldor/content-api/internal/middleware"
	"github.com/reseldor/content-api/internal/service"
	"github.com/reseldor/content-api/pkg/response"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// requesterMayAccess allows a user to act on their own record, and
// admins to act on anyone's
func requesterMayAccess(c *gin.Context, targetID string) bool {
	if c.GetString(middleware.ContextUserID) == targetID {
		return true
	}
	return domain.Role(c.GetString(middleware.ContextUserRole)) == domain.RoleAdmin
}

// Create handles POST /users (admin only, enforced by routing)
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			response.Conflict(c, "Email is already registered")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, dto.ToUserResponse(user))
}

// List handles GET /users (admin only, enforced by routing)
func (h *UserHandler) List(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}
	query.Normalize()

	result, err := h.userService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	users := make([]dto.UserResponse, 0, len(result.Data))
	for _, u := range result.Data {
		users = append(users, dto.ToUserResponse(u))
	}

	response.Paginated(c, users, response.PaginationMeta{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if !requesterMayAccess(c, id) {
		response.Forbidden(c, "Cannot access another user's record")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !requesterMayAccess(c, id) {
		response.Forbidden(c, "Cannot modify another user's record")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	// only admins may change roles
	if req.Role != nil && domain.Role(c.GetString(middleware.ContextUserRole)) != domain.RoleAdmin {
		response.Forbidden(c, "Only admins can change roles")
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrEmailTaken):
			response.Conflict(c, "Email is already registered")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !requesterMayAccess(c, id) {
		response.Forbidden(c, "Cannot delete another user's record")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.NoContent(c)
}
