package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/foodmenu/menu-system/internal/core/domain"
	"github.com/foodmenu/menu-system/internal/core/ports"
)

type stubMenuRepo struct {
	items  map[string]*domain.MenuItem
	nextID int

	lastSearch   string
	lastCategory string
	listCalls    int
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{items: make(map[string]*domain.MenuItem)}
}

func (r *stubMenuRepo) List(_ context.Context) ([]*domain.MenuItem, error) {
	r.listCalls++
	out := make([]*domain.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		clone := *it
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMenuRepo) SearchByName(_ context.Context, substring string) ([]*domain.MenuItem, error) {
	r.lastSearch = substring
	var out []*domain.MenuItem
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Name), strings.ToLower(substring)) {
			clone := *it
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) FindByCategory(_ context.Context, category string) ([]*domain.MenuItem, error) {
	r.lastCategory = category
	var out []*domain.MenuItem
	for _, it := range r.items {
		if it.Category == category {
			clone := *it
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) Insert(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	r.nextID++
	created := *item
	created.ID = strconv.Itoa(r.nextID)
	r.items[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubMenuRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func TestMenuService_ListItems_SearchWinsOverCategory(t *testing.T) {
	repo := newStubMenuRepo()
	svc := NewMenuService(repo, zerolog.Nop())

	if _, err := svc.ListItems(context.Background(), ports.ListMenuInput{Search: "pizza", Category: "mains"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastSearch != "pizza" {
		t.Fatalf("expected search delegation, got search=%q", repo.lastSearch)
	}
	if repo.lastCategory != "" {
		t.Fatalf("category should not be consulted when search is set")
	}
}

func TestMenuService_ListItems_EmptySearchListsAll(t *testing.T) {
	repo := newStubMenuRepo()
	svc := NewMenuService(repo, zerolog.Nop())

	if _, err := svc.ListItems(context.Background(), ports.ListMenuInput{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected List delegation, got %d calls", repo.listCalls)
	}
}

func TestMenuService_ListItems_Category(t *testing.T) {
	repo := newStubMenuRepo()
	svc := NewMenuService(repo, zerolog.Nop())

	if _, err := svc.ListItems(context.Background(), ports.ListMenuInput{Category: "drinks"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastCategory != "drinks" {
		t.Fatalf("expected category delegation, got %q", repo.lastCategory)
	}
}

func TestMenuService_Search_CaseInsensitive(t *testing.T) {
	repo := newStubMenuRepo()
	svc := NewMenuService(repo, zerolog.Nop())

	if _, err := svc.CreateItem(context.Background(), ports.CreateMenuItemInput{Name: "Veggie Pizza", Category: "mains"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	upper, err := svc.ListItems(context.Background(), ports.ListMenuInput{Search: "PIZZA"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	lower, err := svc.ListItems(context.Background(), ports.ListMenuInput{Search: "pizza"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(upper) != 1 || len(lower) != 1 || upper[0].ID != lower[0].ID {
		t.Fatalf("expected identical single-item results, got %d and %d", len(upper), len(lower))
	}
}

func TestMenuService_CreateItem_StoresVerbatim(t *testing.T) {
	repo := newStubMenuRepo()
	svc := NewMenuService(repo, zerolog.Nop())

	item, err := svc.CreateItem(context.Background(), ports.CreateMenuItemInput{
		Name:        "Lemonade",
		Category:    "drinks",
		Price:       -3.50, // negative on purpose: no validation by design
		Description: "fresh",
		ImageURL:    "http://example.com/l.png",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
	if item.Price != -3.50 || item.Name != "Lemonade" || item.ImageURL != "http://example.com/l.png" {
		t.Fatalf("item not stored verbatim: %+v", item)
	}
}

func TestMenuService_DeleteItem_MissingIsNotAnError(t *testing.T) {
	repo := newStubMenuRepo()
	svc := NewMenuService(repo, zerolog.Nop())

	created, err := svc.CreateItem(context.Background(), ports.CreateMenuItemInput{Name: "Soup"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.DeleteItem(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if deleted {
		t.Fatalf("expected false for missing id")
	}

	// The store is unchanged after the miss.
	items, err := svc.ListItems(context.Background(), ports.ListMenuInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("store changed after missed delete: %+v", items)
	}

	deleted, err = svc.DeleteItem(context.Background(), created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got deleted=%v err=%v", deleted, err)
	}
}
