package ports

import (
	"context"

	"github.com/foodmenu/menu-system/internal/core/domain"
)

// MenuRepository defines persistence operations for menu items.
type MenuRepository interface {
	// List returns every menu item. Ordering is not contractual.
	List(ctx context.Context) ([]*domain.MenuItem, error)
	// SearchByName returns items whose name contains the given
	// substring, matched case-insensitively.
	SearchByName(ctx context.Context, substring string) ([]*domain.MenuItem, error)
	FindByCategory(ctx context.Context, category string) ([]*domain.MenuItem, error)
	// Insert stores a new item and returns it with its generated id.
	Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	// DeleteByID removes the item and reports whether it existed.
	// A missing id is not an error.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
