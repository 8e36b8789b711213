package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenhive/platform/internal/core/domain"
)

const watchlistCollection = "watchlists"

// WatchlistRepository persists watchlist entries in MongoDB.
type WatchlistRepository struct {
	coll *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{coll: db.Collection(watchlistCollection)}
}

func (r *WatchlistRepository) ListByUsername(ctx context.Context, username string) ([]domain.WatchlistEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.WatchlistEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode watchlist: %w", err)
	}
	return entries, nil
}

func (r *WatchlistRepository) Add(ctx context.Context, entry *domain.WatchlistEntry) (*domain.WatchlistEntry, error) {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert watchlist entry: %w", err)
	}
	return entry, nil
}

func (r *WatchlistRepository) Remove(ctx context.Context, username, entryID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": entryID, "username": username})
	if err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWatchlistNotFound
	}
	return nil
}
