package news

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
		Limit:   util.ParseLimit(c.DefaultQuery("limit", "10")),
		Offset:  util.ParseOffset(c.DefaultQuery("offset", "0")),
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Tags:    util.SplitCSV(c.Query("tags")),
		Pending: lifecycle.ParsePendingHint(c.Query("isPending")),
		Role:    middleware.CurrentRole(c),
	}
}

func uploadedImage(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, true
	}

	url, _, err := upload.Save(c, file, "news")
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "Failed to store image")
		return nil, false
	}

	return &url, true
}

func (h *Handler) List(c *gin.Context) {
	f := parseFilter(c)

	items, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, items, len(items), total, f.Limit, f.Offset)
}

func (h *Handler) Pending(c *gin.Context) {
	f := parseFilter(c)

	items, total, err := h.service.Pending(c.Request.Context(), middleware.CurrentRole(c), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, items, len(items), total, f.Limit, f.Offset)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid news id")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "title and content are required")
		return
	}

	image, ok := uploadedImage(c)
	if !ok {
		return
	}

	item, err := h.service.Create(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, image)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Legal news created", item)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid news id")
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

	item, err := h.service.Update(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, image)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal news updated", item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid news id")
		return
	}

	err = h.service.Delete(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal news deleted", nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid news id")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	item, err := h.service.Approve(c.Request.Context(), id, middleware.CurrentRole(c), *req.IsApproved)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Legal news approved"
	if !*req.IsApproved {
		message = "Legal news rejected"
	}
	util.SuccessResponse(c, message, item)
}

func (h *Handler) Recent(c *gin.Context) {
	limit := util.ParseLimit(c.DefaultQuery("limit", "5"))

	items, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", items)
}

func (h *Handler) Popular(c *gin.Context) {
	limit := util.ParseLimit(c.DefaultQuery("limit", "5"))

	items, err := h.service.Popular(c.Request.Context(), limit)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", items)
}
