package upload

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinSizeLimit(t *testing.T) {
	assert.True(t, WithinSizeLimit(&multipart.FileHeader{Size: 1024}))
	assert.True(t, WithinSizeLimit(&multipart.FileHeader{Size: MaxAttachmentSize}))
	assert.False(t, WithinSizeLimit(&multipart.FileHeader{Size: MaxAttachmentSize + 1}))
}

func TestAllowedDocumentFile(t *testing.T) {
	assert.True(t, AllowedDocumentFile(&multipart.FileHeader{Filename: "luat-dat-dai.docx"}))
	assert.True(t, AllowedDocumentFile(&multipart.FileHeader{Filename: "NGHI-DINH.DOC"}))
	assert.False(t, AllowedDocumentFile(&multipart.FileHeader{Filename: "scan.pdf"}))
	assert.False(t, AllowedDocumentFile(&multipart.FileHeader{Filename: "noext"}))
}
