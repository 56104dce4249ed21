package service

import (
	"context"
	"strings"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type toolService struct {
	toolRepo     repository.ToolRepository
	categoryRepo repository.CategoryRepository
}

func NewToolService(toolRepo repository.ToolRepository, categoryRepo repository.CategoryRepository) ToolService {
	return &toolService{
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *toolService) CreateTool(ctx context.Context, tool *domain.Tool) (*domain.Tool, error) {
	if strings.TrimSpace(tool.Name) == "" {
		return nil, domain.Validationf("tool name is required")
	}
	if strings.TrimSpace(tool.AssetTag) == "" {
		return nil, domain.Validationf("asset tag is required")
	}
	if tool.Status == "" {
		tool.Status = domain.ToolStatusAvailable
	}
	if !domain.ValidToolStatus(tool.Status) {
		return nil, domain.Validationf("unknown tool status %q", tool.Status)
	}

	cat, err := s.categoryRepo.GetByID(ctx, tool.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}
	tool.CategoryName = cat.Name
	return tool, nil
}

func (s *toolService) GetTool(ctx context.Context, id int64) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) ListTools(ctx context.Context, search string) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx, search)
}

func (s *toolService) UpdateTool(ctx context.Context, tool *domain.Tool) (*domain.Tool, error) {
	existing, err := s.toolRepo.GetByID(ctx, tool.ID)
	if err != nil {
		return nil, err
	}

	if tool.Name != "" {
		existing.Name = tool.Name
	}
	if tool.AssetTag != "" {
		existing.AssetTag = tool.AssetTag
	}
	if tool.CategoryID != 0 && tool.CategoryID != existing.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, tool.CategoryID); err != nil {
			return nil, err
		}
		existing.CategoryID = tool.CategoryID
	}
	if tool.Status != "" {
		if !domain.ValidToolStatus(tool.Status) {
			return nil, domain.Validationf("unknown tool status %q", tool.Status)
		}
		existing.Status = tool.Status
	}
	if tool.PurchaseDate != nil {
		existing.PurchaseDate = tool.PurchaseDate
	}
	if tool.Location != "" {
		existing.Location = tool.Location
	}
	if tool.ImagePath != "" {
		existing.ImagePath = tool.ImagePath
	}

	if err := s.toolRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.toolRepo.GetByID(ctx, existing.ID)
}

func (s *toolService) DeleteTool(ctx context.Context, id int64) error {
	return s.toolRepo.Delete(ctx, id)
}

func (s *toolService) SetImagePath(ctx context.Context, id int64, imagePath string) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	tool.ImagePath = imagePath
	return s.toolRepo.Update(ctx, tool)
}
