package service

import (
	"context"
	"errors"

	"github.com/jaiganesh5555/arcade/internal/model"
	"github.com/jaiganesh5555/arcade/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrTypeRequired        = errors.New("type is required")
	ErrContentRequired     = errors.New("content is required")
	ErrDemoNotFound        = errors.New("demo not found")
)

// DemoService handles demo business logic. All operations are scoped to the
// calling user; a demo owned by someone else surfaces as ErrDemoNotFound.
type DemoService struct {
	repo *repository.DemoRepository
}

// NewDemoService creates a new DemoService.
func NewDemoService(repo *repository.DemoRepository) *DemoService {
	return &DemoService{repo: repo}
}

// validateDemo checks a demo payload and returns the first violation found.
func validateDemo(req model.DemoRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if req.Description == "" {
		return ErrDescriptionRequired
	}
	if req.Type == "" {
		return ErrTypeRequired
	}
	if req.Content == "" {
		return ErrContentRequired
	}
	return nil
}

// Create inserts a new demo owned by the user, with a zero view counter.
func (s *DemoService) Create(ctx context.Context, userID int64, req model.DemoRequest) (model.DemoResponse, error) {
	if err := validateDemo(req); err != nil {
		return model.DemoResponse{}, err
	}

	demo := model.Demo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		URL:         req.URL,
		IsPublic:    req.IsPublic,
	}

	if err := s.repo.Create(ctx, &demo); err != nil {
		return model.DemoResponse{}, err
	}

	return demoToResponse(demo), nil
}

// List returns all demos owned by the user, newest first.
func (s *DemoService) List(ctx context.Context, userID int64) ([]model.DemoResponse, error) {
	demos, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return demosToResponse(demos), nil
}

// Get returns the user's demo and bumps its view counter. The returned record
// carries the pre-increment count.
func (s *DemoService) Get(ctx context.Context, userID, demoID int64) (model.DemoResponse, error) {
	demo, err := s.repo.GetByID(ctx, userID, demoID)
	if err != nil {
		if errors.Is(err, repository.ErrDemoNotFound) {
			return model.DemoResponse{}, ErrDemoNotFound
		}
		return model.DemoResponse{}, err
	}

	if err := s.repo.IncrementViews(ctx, userID, demoID); err != nil {
		return model.DemoResponse{}, err
	}

	return demoToResponse(*demo), nil
}

// Update overwrites all mutable fields of the user's demo.
func (s *DemoService) Update(ctx context.Context, userID, demoID int64, req model.DemoRequest) (model.DemoResponse, error) {
	if err := validateDemo(req); err != nil {
		return model.DemoResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, userID, demoID)
	if err != nil {
		if errors.Is(err, repository.ErrDemoNotFound) {
			return model.DemoResponse{}, ErrDemoNotFound
		}
		return model.DemoResponse{}, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Type = req.Type
	existing.Content = req.Content
	existing.Thumbnail = req.Thumbnail
	existing.URL = req.URL
	existing.IsPublic = req.IsPublic

	if err := s.repo.Update(ctx, existing); err != nil {
		return model.DemoResponse{}, err
	}

	return demoToResponse(*existing), nil
}

// Delete removes the user's demo.
func (s *DemoService) Delete(ctx context.Context, userID, demoID int64) error {
	err := s.repo.Delete(ctx, userID, demoID)
	if errors.Is(err, repository.ErrDemoNotFound) {
		return ErrDemoNotFound
	}
	return err
}

func demoToResponse(d model.Demo) model.DemoResponse {
	return model.DemoResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Content:     d.Content,
		Thumbnail:   d.Thumbnail,
		URL:         d.URL,
		IsPublic:    d.IsPublic,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func demosToResponse(demos []model.Demo) []model.DemoResponse {
	result := make([]model.DemoResponse, len(demos))
	for i, d := range demos {
		result[i] = demoToResponse(d)
	}
	return result
}
