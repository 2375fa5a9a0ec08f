package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/middleware"
	"github.com/demowin23/vilaw-be/util"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func auditContext(c *gin.Context) *AuditContext {
	return &AuditContext{
		AdminID:   middleware.CurrentUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	f := &ListUsersFilter{
		Limit:  util.ParseLimit(c.DefaultQuery("limit", "10")),
		Offset: util.ParseOffset(c.DefaultQuery("offset", "0")),
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true"
		f.IsActive = &active
	}

	users, total, err := h.service.ListUsers(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, users, len(users), total, f.Limit, f.Offset)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "phone and full_name are required")
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), auditContext(c), &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "User created", u)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), auditContext(c), id, &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "User updated", u)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), auditContext(c), id); err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "User deleted", nil)
}

func (h *Handler) ChangeRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "role is required")
		return
	}

	u, err := h.service.ChangeRole(c.Request.Context(), auditContext(c), id, req.Role)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Role changed", u)
}

func (h *Handler) Actions(c *gin.Context) {
	limit := util.ParseLimit(c.DefaultQuery("limit", "10"))
	offset := util.ParseOffset(c.DefaultQuery("offset", "0"))

	actions, err := h.service.Actions(c.Request.Context(), c.Query("action_type"), limit, offset)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", actions)
}
