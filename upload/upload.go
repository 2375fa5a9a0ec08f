package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxAttachmentSize caps document and chat attachments at 10MB.
const MaxAttachmentSize = 10 << 20

// WithinSizeLimit reports whether the upload fits the attachment cap.
func WithinSizeLimit(file *multipart.FileHeader) bool {
	return file.Size <= MaxAttachmentSize
}

// Dir returns the directory where uploaded files are stored.
func Dir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// EnsureDir creates the upload directory if it does not exist yet.
func EnsureDir() error {
	return os.MkdirAll(Dir(), 0o755)
}

// Save writes the uploaded file under a collision-free name and returns
// the public URL and the size in bytes.
func Save(c *gin.Context, file *multipart.FileHeader, prefix string) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)

	if err := c.SaveUploadedFile(file, filepath.Join(Dir(), name)); err != nil {
		return "", 0, err
	}

	return "/uploads/" + name, file.Size, nil
}

// AllowedDocumentFile reports whether the upload is a Word document.
func AllowedDocumentFile(file *multipart.FileHeader) bool {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return ext == ".doc" || ext == ".docx"
}
