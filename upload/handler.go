package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/util"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) UploadImage(c *gin.Context) {
	h.upload(c, "image")
}

func (h *Handler) UploadVideo(c *gin.Context) {
	h.upload(c, "video")
}

func (h *Handler) upload(c *gin.Context, prefix string) {
	file, err := c.FormFile("file")
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	url, _, err := Save(c, file, prefix)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	util.SuccessResponse(c, "File uploaded", gin.H{"url": url})
}
