package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/foodmenu/menu-system/internal/core/domain"
	"github.com/foodmenu/menu-system/internal/core/ports"
)

type MenuService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

// ListItems resolves the list query: a non-empty search term wins over
// a category filter, and no filters at all returns everything.
func (s *MenuService) ListItems(ctx context.Context, input ports.ListMenuInput) ([]*domain.MenuItem, error) {
	switch {
	case input.Search != "":
		return s.repo.SearchByName(ctx, input.Search)
	case input.Category != "":
		return s.repo.FindByCategory(ctx, input.Category)
	default:
		return s.repo.List(ctx)
	}
}

// CreateItem stores the submitted item verbatim and returns it with
// its generated id.
func (s *MenuService) CreateItem(ctx context.Context, input ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	item := &domain.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create menu item")
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

// DeleteItem removes an item by id. Deleting a missing id reports
// false without an error.
func (s *MenuService) DeleteItem(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info().Str("id", id).Msg("menu item deleted")
	}
	return deleted, nil
}
