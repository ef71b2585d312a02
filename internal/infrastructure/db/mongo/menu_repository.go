package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodmenu/menu-system/internal/core/domain"
)

const menuCollection = "menu_items"

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menuCollection)}
}

type mongoMenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
}

func (r *MenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return r.find(ctx, bson.M{})
}

// SearchByName matches items whose name contains the substring,
// case-insensitively. The substring is quoted so regex metacharacters
// in user input are matched literally.
func (r *MenuRepository) SearchByName(ctx context.Context, substring string) ([]*domain.MenuItem, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(substring), Options: "i"}
	return r.find(ctx, bson.M{"name": pattern})
}

func (r *MenuRepository) FindByCategory(ctx context.Context, category string) ([]*domain.MenuItem, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMenuItem{
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    item.ImageURL,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// DeleteByID removes the item and reports whether it existed. An id
// that does not parse as an ObjectID cannot match any row, so it is
// treated as not-found rather than an error.
func (r *MenuRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete menu item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates the lookup indexes for search and category
// filtering. Call once at startup.
func (r *MenuRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MenuRepository) find(ctx context.Context, filter bson.M) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoMenuItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}

	items := make([]*domain.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, &domain.MenuItem{
			ID:          d.ID.Hex(),
			Name:        d.Name,
			Category:    d.Category,
			Price:       d.Price,
			Description: d.Description,
			ImageURL:    d.ImageURL,
		})
	}
	return items, nil
}
