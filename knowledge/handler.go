package knowledge

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/middleware"
	"github.com/demowin23/vilaw-be/upload"
	"github.com/demowin23/vilaw-be/util"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseFilter(c *gin.Context) *ListFilter {
	return &ListFilter{
		Limit:    util.ParseLimit(c.DefaultQuery("limit", "10")),
		Offset:   util.ParseOffset(c.DefaultQuery("offset", "0")),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.DefaultQuery("status", "published"),
		Pending:  lifecycle.ParsePendingHint(c.Query("isPending")),
		Role:     middleware.CurrentRole(c),
	}
}

// uploadedImage stores an optional multipart image and returns its URL.
func uploadedImage(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, true
	}

	url, _, err := upload.Save(c, file, "knowledge")
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "Failed to store image")
		return nil, false
	}

	return &url, true
}

func (h *Handler) List(c *gin.Context) {
	f := parseFilter(c)

	articles, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, articles, len(articles), total, f.Limit, f.Offset)
}

func (h *Handler) Featured(c *gin.Context) {
	f := parseFilter(c)

	articles, total, err := h.service.Featured(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, articles, len(articles), total, f.Limit, f.Offset)
}

func (h *Handler) Pending(c *gin.Context) {
	f := parseFilter(c)
	f.Status = c.Query("status")

	articles, total, err := h.service.Pending(c.Request.Context(), middleware.CurrentRole(c), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, articles, len(articles), total, f.Limit, f.Offset)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest,
			"Required fields: title, content, category, author")
		return
	}

	image, ok := uploadedImage(c)
	if !ok {
		return
	}

	article, err := h.service.Create(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, image)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Legal knowledge created", article)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	image, ok := uploadedImage(c)
	if !ok {
		return
	}

	article, err := h.service.Update(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, image)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal knowledge updated", article)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	err = h.service.Delete(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal knowledge deleted", nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	article, err := h.service.Approve(c.Request.Context(), id, middleware.CurrentRole(c), *req.IsApproved)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Legal knowledge approved"
	if !*req.IsApproved {
		message = "Legal knowledge rejected"
	}
	util.SuccessResponse(c, message, article)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", categories)
}
