package legaldoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/upload"
	"github.com/demowin23/vilaw-be/util"
)

const (
	viewTokenPrefix = "legaldoc:view:"
	viewTokenTTL    = 10 * time.Minute
)

type Service struct {
	repo  *Repository
	cache *redis.Client
}

func NewService(repo *Repository, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) List(ctx context.Context, f *ListFilter) ([]LegalDocument, int64, error) {
	return s.repo.List(ctx, f, "ld.ts_create DESC")
}

// Popular lists approved documents by download count. The approval scope
// is forced to the public view regardless of caller.
func (s *Service) Popular(ctx context.Context, f *ListFilter) ([]LegalDocument, int64, error) {
	f.Role = lifecycle.RoleNone
	f.Pending = lifecycle.PendingUnset
	return s.repo.List(ctx, f, "ld.download_count DESC, ld.ts_create DESC")
}

func (s *Service) Pending(ctx context.Context, role lifecycle.Role, f *ListFilter) ([]LegalDocument, int64, error) {
	if !lifecycle.CanApprove(role) {
		return nil, 0, fmt.Errorf("%w: only admin can list pending documents", lifecycle.ErrForbidden)
	}
	f.Role = role
	f.Pending = lifecycle.PendingOnly
	return s.repo.List(ctx, f, "ld.ts_create DESC")
}

// GetDetail loads one document and attaches the table of contents
// generated from its HTML content.
func (s *Service) GetDetail(ctx context.Context, id int64) (*DocumentDetail, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &DocumentDetail{LegalDocument: *doc, HTMLToc: []Heading{}}
	if doc.HTMLContent != nil && *doc.HTMLContent != "" {
		headings, modified := GenerateTOC(*doc.HTMLContent)
		detail.HTMLToc = headings
		detail.HTMLContent = &modified
	}

	return detail, nil
}

func (s *Service) Create(ctx context.Context, callerID int64, role lifecycle.Role, req *CreateRequest, fileURL *string, fileSize int64) (*LegalDocument, error) {
	issued, err := lifecycle.ParseDate(req.IssuedDate)
	if err != nil {
		return nil, err
	}
	effective, err := lifecycle.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	expiry, err := lifecycle.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	dates := lifecycle.Dates{Issued: issued, Effective: effective, Expiry: expiry}
	if err := lifecycle.ValidateDates(dates); err != nil {
		return nil, err
	}

	exists, err := s.repo.DocumentNumberExists(ctx, req.DocumentNumber, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: document number already exists", lifecycle.ErrConflict)
	}

	doc := &LegalDocument{
		Title:            req.Title,
		DocumentNumber:   req.DocumentNumber,
		DocumentType:     req.DocumentType,
		IssuingAuthority: req.IssuingAuthority,
		IssuedDate:       issued,
		EffectiveDate:    effective,
		ExpiryDate:       expiry,
		Tags:             splitTags(req.Tags),
		FileURL:          fileURL,
		FileSize:         fileSize,
		UploadedBy:       &callerID,
		IsImportant:      req.IsImportant,
		IsApproved:       lifecycle.ApprovedAtCreation(role),
	}
	if req.HTMLContent != "" {
		doc.HTMLContent = &req.HTMLContent
	}

	return s.repo.Create(ctx, doc)
}

func (s *Service) Update(ctx context.Context, id, callerID int64, role lifecycle.Role, req *UpdateRequest, fileURL *string, fileSize int64) (*LegalDocument, error) {
	return s.repo.Update(ctx, id, func(existing *LegalDocument) (*UpdatePatch, error) {
		var creatorID int64
		if existing.UploadedBy != nil {
			creatorID = *existing.UploadedBy
		}
		if !lifecycle.CanMutate(role, callerID, creatorID) {
			return nil, fmt.Errorf("%w: no permission to update this document", lifecycle.ErrForbidden)
		}

		patch := &UpdatePatch{
			Title:            existing.Title,
			DocumentNumber:   existing.DocumentNumber,
			DocumentType:     existing.DocumentType,
			IssuingAuthority: existing.IssuingAuthority,
			IssuedDate:       existing.IssuedDate,
			EffectiveDate:    existing.EffectiveDate,
			ExpiryDate:       existing.ExpiryDate,
			Tags:             existing.Tags,
			FileURL:          existing.FileURL,
			FileSize:         existing.FileSize,
			IsImportant:      existing.IsImportant,
			HTMLContent:      existing.HTMLContent,
		}

		if req.Title != nil {
			patch.Title = *req.Title
		}
		if req.DocumentNumber != nil {
			patch.DocumentNumber = *req.DocumentNumber
		}
		if req.DocumentType != nil {
			patch.DocumentType = *req.DocumentType
		}
		if req.IssuingAuthority != nil {
			patch.IssuingAuthority = *req.IssuingAuthority
		}
		if req.IssuedDate != nil {
			issued, err := lifecycle.ParseDate(*req.IssuedDate)
			if err != nil {
				return nil, err
			}
			patch.IssuedDate = issued
		}
		if req.EffectiveDate != nil {
			effective, err := lifecycle.ParseDate(*req.EffectiveDate)
			if err != nil {
				return nil, err
			}
			patch.EffectiveDate = effective
		}
		if req.ExpiryDate != nil {
			expiry, err := lifecycle.ParseDate(*req.ExpiryDate)
			if err != nil {
				return nil, err
			}
			patch.ExpiryDate = expiry
		}
		if req.Tags != nil {
			patch.Tags = splitTags(*req.Tags)
		}
		if req.IsImportant != nil {
			patch.IsImportant = *req.IsImportant
		}
		if req.HTMLContent != nil {
			patch.HTMLContent = req.HTMLContent
		}
		if fileURL != nil {
			if existing.FileURL != nil {
				removeStoredFile(*existing.FileURL)
			}
			patch.FileURL = fileURL
			patch.FileSize = fileSize
		}

		dates := lifecycle.Dates{
			Issued:    patch.IssuedDate,
			Effective: patch.EffectiveDate,
			Expiry:    patch.ExpiryDate,
		}
		if err := lifecycle.ValidateDates(dates); err != nil {
			return nil, err
		}

		return patch, nil
	})
}

func (s *Service) Delete(ctx context.Context, id, callerID int64, role lifecycle.Role) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var creatorID int64
	if existing.UploadedBy != nil {
		creatorID = *existing.UploadedBy
	}
	if !lifecycle.CanMutate(role, callerID, creatorID) {
		return fmt.Errorf("%w: no permission to delete this document", lifecycle.ErrForbidden)
	}

	if existing.FileURL != nil {
		removeStoredFile(*existing.FileURL)
	}

	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64, role lifecycle.Role, approved bool) (*LegalDocument, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can approve documents", lifecycle.ErrForbidden)
	}

	return s.repo.SetApproved(ctx, id, approved)
}

// Download resolves the stored file of a document and counts the hit.
// If the file vanished from disk the reference is cleared so clients
// stop seeing a dead link.
func (s *Service) Download(ctx context.Context, id int64) (path string, name string, err error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	if doc.FileURL == nil || *doc.FileURL == "" {
		return "", "", fmt.Errorf("%w: document has no attached file", lifecycle.ErrNotFound)
	}

	filePath := filepath.Join(upload.Dir(), filepath.Base(*doc.FileURL))
	if _, statErr := os.Stat(filePath); statErr != nil {
		if clearErr := s.repo.ClearFile(ctx, id); clearErr != nil {
			return "", "", clearErr
		}
		return "", "", fmt.Errorf("%w: attached file is missing", lifecycle.ErrNotFound)
	}

	if err := s.repo.IncrementDownloadCount(ctx, id); err != nil {
		return "", "", err
	}

	return filePath, doc.Title + filepath.Ext(filePath), nil
}

// GenerateViewURL mints a short-lived token for serving the attached file
// without exposing the storage path.
func (s *Service) GenerateViewURL(ctx context.Context, id int64) (string, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if doc.FileURL == nil || *doc.FileURL == "" {
		return "", fmt.Errorf("%w: document has no attached file", lifecycle.ErrNotFound)
	}

	token := util.RandString(32)
	key := viewTokenPrefix + token
	if err := s.cache.Set(ctx, key, *doc.FileURL, viewTokenTTL).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// ResolveViewToken exchanges a view token for the file path it protects.
func (s *Service) ResolveViewToken(ctx context.Context, token string) (string, error) {
	fileURL, err := s.cache.Get(ctx, viewTokenPrefix+token).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: view token is invalid or expired", lifecycle.ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	return filepath.Join(upload.Dir(), filepath.Base(fileURL)), nil
}

func (s *Service) ResyncStatuses(ctx context.Context) (int64, error) {
	return s.repo.ResyncStatuses(ctx)
}

func (s *Service) Types() []DocumentType {
	return []DocumentType{
		{Value: "luat", Label: "Luật"},
		{Value: "nghi_dinh", Label: "Nghị định"},
		{Value: "nghi_quyet", Label: "Nghị quyết"},
		{Value: "quyet_dinh", Label: "Quyết định"},
		{Value: "thong_tu", Label: "Thông tư"},
		{Value: "chi_thi", Label: "Chỉ thị"},
		{Value: "phap_lenh", Label: "Pháp lệnh"},
		{Value: "quy_pham", Label: "Quy phạm pháp luật"},
		{Value: "khac", Label: "Khác"},
	}
}

func (s *Service) Statuses() []StatusInfo {
	statuses := lifecycle.Statuses()
	out := make([]StatusInfo, 0, len(statuses))
	for i, st := range statuses {
		out = append(out, StatusInfo{ID: i + 1, Value: string(st), Name: st.Name()})
	}
	return out
}

// splitTags normalizes a comma separated tag string, dropping empties.
func splitTags(s string) pq.StringArray {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make(pq.StringArray, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func removeStoredFile(fileURL string) {
	path := filepath.Join(upload.Dir(), filepath.Base(fileURL))
	os.Remove(path)
}
