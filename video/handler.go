package video

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
		Limit:      util.ParseLimit(c.DefaultQuery("limit", "10")),
		Offset:     util.ParseOffset(c.DefaultQuery("offset", "0")),
		Type:       c.Query("type"),
		Search:     c.Query("search"),
		Hashtag:    c.Query("hashtag"),
		AgeGroup:   c.Query("age_group"),
		IsFeatured: c.Query("is_featured") == "true",
		SortBy:     c.DefaultQuery("sort_by", "ts_create"),
		SortOrder:  c.DefaultQuery("sort_order", "desc"),
		Pending:    lifecycle.ParsePendingHint(c.Query("isPending")),
		Role:       middleware.CurrentRole(c),
	}
}

// uploadedFile stores an optional multipart file and returns its public URL.
func uploadedFile(c *gin.Context, field, prefix string) (*string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, true
	}

	url, _, err := upload.Save(c, file, prefix)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "Failed to store "+field)
		return nil, false
	}

	return &url, true
}

func (h *Handler) List(c *gin.Context) {
	f := parseFilter(c)

	items, total, err := h.service.List(c.Request.Context(), middleware.CurrentUserID(c), f)
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
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "type and title are required")
		return
	}

	videoURL, ok := uploadedFile(c, "video", "video")
	if !ok {
		return
	}
	thumbnailURL, ok := uploadedFile(c, "thumbnail", "thumb")
	if !ok {
		return
	}

	item, err := h.service.Create(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, videoURL, thumbnailURL)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Video created", item)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	videoURL, ok := uploadedFile(c, "video", "video")
	if !ok {
		return
	}
	thumbnailURL, ok := uploadedFile(c, "thumbnail", "thumb")
	if !ok {
		return
	}

	item, err := h.service.Update(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, videoURL, thumbnailURL)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Video updated", item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		return
	}

	err = h.service.Delete(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Video deleted", nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
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

	message := "Video approved"
	if !*req.IsApproved {
		message = "Video rejected"
	}
	util.SuccessResponse(c, message, item)
}

func (h *Handler) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "action is required")
		return
	}

	action, err := h.service.ToggleLike(c.Request.Context(), id, middleware.CurrentUserID(c), req.Action)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Reaction removed"
	if action != nil {
		message = "Video " + *action + "d"
	}
	util.SuccessResponse(c, message, gin.H{"action": action})
}

func (h *Handler) Comments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		return
	}

	limit := util.ParseLimit(c.DefaultQuery("limit", "20"))
	offset := util.ParseOffset(c.DefaultQuery("offset", "0"))

	comments, total, err := h.service.Comments(c.Request.Context(), id, middleware.CurrentUserID(c), limit, offset)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, comments, len(comments), total, limit, offset)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), id, middleware.CurrentUserID(c), &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Comment added", comment)
}

func (h *Handler) ToggleCommentLike(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid comment id")
		return
	}

	liked, err := h.service.ToggleCommentLike(c.Request.Context(), commentID, middleware.CurrentUserID(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Comment unliked"
	if liked {
		message = "Comment liked"
	}
	util.SuccessResponse(c, message, gin.H{"liked": liked})
}

func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid comment id")
		return
	}

	err = h.service.DeleteComment(c.Request.Context(), commentID,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Comment deleted", nil)
}

func (h *Handler) Types(c *gin.Context) {
	types, err := h.service.Types(c.Request.Context())
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", types)
}

func (h *Handler) AgeGroups(c *gin.Context) {
	util.SuccessResponse(c, "OK", h.service.AgeGroups())
}

func (h *Handler) PopularHashtags(c *gin.Context) {
	limit := util.ParseLimit(c.DefaultQuery("limit", "20"))

	tags, err := h.service.PopularHashtags(c.Request.Context(), limit)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", tags)
}

func (h *Handler) MostViewed(c *gin.Context) {
	f := parseFilter(c)
	limit := util.ParseLimit(c.DefaultQuery("limit", "10"))

	items, err := h.service.MostViewed(c.Request.Context(), f, limit)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", items)
}

func (h *Handler) MostLiked(c *gin.Context) {
	f := parseFilter(c)
	limit := util.ParseLimit(c.DefaultQuery("limit", "10"))

	items, err := h.service.MostLiked(c.Request.Context(), f, limit)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", items)
}
