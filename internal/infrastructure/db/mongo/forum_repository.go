package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenhive/platform/internal/core/domain"
)

const forumCollection = "forum_threads"

// ForumRepository persists forum threads in MongoDB.
type ForumRepository struct {
	coll *mongo.Collection
}

func NewForumRepository(db *mongo.Database) *ForumRepository {
	return &ForumRepository{coll: db.Collection(forumCollection)}
}

type mongoThread struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Author    string             `bson:"author"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *ForumRepository) List(ctx context.Context, limit int64) ([]domain.ForumThread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoThread
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode threads: %w", err)
	}

	threads := make([]domain.ForumThread, 0, len(docs))
	for _, d := range docs {
		threads = append(threads, d.toDomain())
	}
	return threads, nil
}

func (r *ForumRepository) Create(ctx context.Context, thread *domain.ForumThread) (*domain.ForumThread, error) {
	doc := mongoThread{
		Title:     thread.Title,
		Body:      thread.Body,
		Author:    thread.Author,
		CreatedAt: thread.CreatedAt.Unix(),
		UpdatedAt: thread.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert thread: %w", err)
	}

	created := *thread
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ForumRepository) Delete(ctx context.Context, threadID string) error {
	oid, err := primitive.ObjectIDFromHex(threadID)
	if err != nil {
		return domain.ErrThreadNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete thread: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (d mongoThread) toDomain() domain.ForumThread {
	return domain.ForumThread{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		Author:    d.Author,
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}
