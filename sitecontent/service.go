package sitecontent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) (map[string]*SiteContent, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	content := make(map[string]*SiteContent, len(rows))
	for i := range rows {
		content[rows[i].ContentKey] = &rows[i]
	}
	return content, nil
}

func (s *Service) Get(ctx context.Context, key string) (*SiteContent, error) {
	if !ValidKey(key) {
		return nil, fmt.Errorf("%w: key must be 'about' or 'contact'", lifecycle.ErrValidation)
	}
	return s.repo.GetByKey(ctx, key)
}

func (s *Service) UpdateAbout(ctx context.Context, content *AboutContent, updatedBy string, expectedVersion *int) (*SiteContent, error) {
	sanitizeAbout(content)
	if content.HeaderTitle == "" || content.CompanyName == "" {
		return nil, fmt.Errorf("%w: headerTitle and companyName are required", lifecycle.ErrValidation)
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, KeyAbout, payload, updatedBy, expectedVersion)
}

func (s *Service) UpdateContact(ctx context.Context, content *ContactContent, updatedBy string, expectedVersion *int) (*SiteContent, error) {
	sanitizeContact(content)
	if content.HeroTitle == "" {
		return nil, fmt.Errorf("%w: heroTitle is required", lifecycle.ErrValidation)
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, KeyContact, payload, updatedBy, expectedVersion)
}

func sanitizeAbout(c *AboutContent) {
	c.HeaderTitle = strings.TrimSpace(c.HeaderTitle)
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.Mission = strings.TrimSpace(c.Mission)
	c.ServicesImage = strings.TrimSpace(c.ServicesImage)
	c.ContactCTA = strings.TrimSpace(c.ContactCTA)
	c.IntroParagraphs = trimStrings(c.IntroParagraphs)
	c.Principles = trimStrings(c.Principles)
	c.CoreValues = trimStrings(c.CoreValues)
	c.Services = trimStrings(c.Services)

	for i := range c.Timeline {
		c.Timeline[i].Year = strings.TrimSpace(c.Timeline[i].Year)
		c.Timeline[i].Title = strings.TrimSpace(c.Timeline[i].Title)
		c.Timeline[i].Description = strings.TrimSpace(c.Timeline[i].Description)
	}
	for i := range c.Awards {
		c.Awards[i].Title = strings.TrimSpace(c.Awards[i].Title)
		c.Awards[i].Year = strings.TrimSpace(c.Awards[i].Year)
		c.Awards[i].Issuer = strings.TrimSpace(c.Awards[i].Issuer)
	}
	for i := range c.Testimonials {
		c.Testimonials[i].Name = strings.TrimSpace(c.Testimonials[i].Name)
		c.Testimonials[i].Position = strings.TrimSpace(c.Testimonials[i].Position)
		c.Testimonials[i].Content = strings.TrimSpace(c.Testimonials[i].Content)
	}
	for i := range c.Stats {
		c.Stats[i].Number = strings.TrimSpace(c.Stats[i].Number)
		c.Stats[i].Label = strings.TrimSpace(c.Stats[i].Label)
	}
	for i := range c.Offices {
		c.Offices[i].Name = strings.TrimSpace(c.Offices[i].Name)
		c.Offices[i].Address = strings.TrimSpace(c.Offices[i].Address)
		c.Offices[i].Phone = strings.TrimSpace(c.Offices[i].Phone)
	}
}

func sanitizeContact(c *ContactContent) {
	c.HeroTitle = strings.TrimSpace(c.HeroTitle)
	c.HeroSubtitle = strings.TrimSpace(c.HeroSubtitle)
	c.CompanyInfo = strings.TrimSpace(c.CompanyInfo)
	c.Address = strings.TrimSpace(c.Address)
	c.Hotline = strings.TrimSpace(c.Hotline)
	c.Email = strings.TrimSpace(c.Email)
	c.MapEmbedSrc = strings.TrimSpace(c.MapEmbedSrc)
	for i := range c.BusinessHours {
		c.BusinessHours[i].Day = strings.TrimSpace(c.BusinessHours[i].Day)
		c.BusinessHours[i].Hours = strings.TrimSpace(c.BusinessHours[i].Hours)
	}
}

func trimStrings(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
