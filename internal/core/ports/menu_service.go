package ports

import (
	"context"

	"github.com/foodmenu/menu-system/internal/core/domain"
)

// ListMenuInput carries the query parameters of the list endpoint.
// Search takes precedence over Category when both are present; empty
// values mean "no filter".
type ListMenuInput struct {
	Search   string
	Category string
}

// CreateMenuItemInput carries the fields accepted for a new menu item.
// Nothing here is validated; the payload is stored verbatim.
type CreateMenuItemInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
}

// MenuService defines use-case operations for the menu.
type MenuService interface {
	ListItems(ctx context.Context, input ListMenuInput) ([]*domain.MenuItem, error)
	CreateItem(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id string) (bool, error)
}
