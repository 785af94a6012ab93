// Package mongo implements the primary storage backend on MongoDB
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/store"
)

const (
	authorsCollection    = "authors"
	postsCollection      = "posts"
	aggregatedCollection = "aggregatedposts"
)

// Store is a MongoDB backend. Make it with New and release with Close.
type Store struct {
	client     *mongo.Client
	authors    *mongo.Collection
	posts      *mongo.Collection
	aggregated *mongo.Collection
}

// Config defines connection parameters
type Config struct {
	URI                    string
	Database               string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

// New makes a client for the given uri. The driver connects lazily,
// an unreachable server is reported by Ping and by the first operation, not here.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is not set")
	}
	if cfg.Database == "" {
		cfg.Database = "philosophers-alliance"
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.ServerSelectionTimeout <= 0 {
		cfg.ServerSelectionTimeout = 5 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	return &Store{
		client:     client,
		authors:    db.Collection(authorsCollection),
		posts:      db.Collection(postsCollection),
		aggregated: db.Collection(aggregatedCollection),
	}, nil
}

// Ping checks the primary node is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect from mongo: %w", err)
	}
	return nil
}

// EnsureIndexes creates unique keys, sort and text indexes for all collections.
// Empty substack urls are left out of the uniqueness check.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	idx := map[*mongo.Collection][]mongo.IndexModel{
		s.authors: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "substackUrl", Value: 1}}, Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"substackUrl": bson.M{"$gt": ""}})},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		s.posts: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "sourceId", Value: 1}, {Key: "publishDate", Value: -1}}},
			{Keys: bson.D{{Key: "publishDate", Value: -1}}},
		},
		s.aggregated: {
			{Keys: bson.D{{Key: "postUrl", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "excerpt", Value: "text"}, {Key: "authorName", Value: "text"}}},
		},
	}
	for coll, models := range idx {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// UpsertAuthor creates or overwrites the author by id
func (s *Store) UpsertAuthor(ctx context.Context, author domain.Author) (bool, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set":         authorSet(author, now),
		"$setOnInsert": bson.M{"createdAt": now},
	}
	res, err := s.authors.UpdateOne(ctx, bson.M{"id": author.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("upsert author %s: %w", author.ID, err)
	}
	return res.UpsertedCount > 0, nil
}

// ReplacePostsForSource deletes all posts of the source and upserts the given ones in one transaction.
// Transactions need a replica set or a sharded cluster.
func (s *Store) ReplacePostsForSource(ctx context.Context, sourceID string, posts []domain.Post) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.posts.DeleteMany(sc, bson.M{"sourceId": sourceID}); err != nil {
			return nil, fmt.Errorf("delete posts: %w", err)
		}
		if len(posts) == 0 {
			return nil, nil
		}
		models := make([]mongo.WriteModel, 0, len(posts))
		for _, p := range posts {
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"id": p.ID}).
				SetReplacement(newPostDoc(p)).
				SetUpsert(true))
		}
		if _, err := s.posts.BulkWrite(sc, models, options.BulkWrite().SetOrdered(false)); err != nil {
			return nil, fmt.Errorf("write posts: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("replace posts for %s: %w", sourceID, err)
	}
	lgr.Printf("[DEBUG] saved %d posts of %s to mongo", len(posts), sourceID)
	return nil
}

// UpsertAggregatedPost creates or overwrites the aggregated post by url
func (s *Store) UpsertAggregatedPost(ctx context.Context, post domain.AggregatedPost) (bool, error) {
	if post.PostURL == "" {
		return false, errors.New("aggregated post without url")
	}
	now := time.Now().UTC()
	update := bson.M{
		"$set":         aggregatedSet(post, now),
		"$setOnInsert": bson.M{"createdAt": now},
	}
	res, err := s.aggregated.UpdateOne(ctx, bson.M{"postUrl": post.PostURL}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("upsert aggregated post %s: %w", post.PostURL, err)
	}
	return res.UpsertedCount > 0, nil
}

// QueryAuthors lists authors sorted by name
func (s *Store) QueryAuthors(ctx context.Context, q store.AuthorQuery) ([]domain.Author, int64, error) {
	filter := authorsFilter(q)
	total, err := s.authors.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	var docs []authorDoc
	if err := s.findAll(ctx, s.authors, filter, opts, &docs); err != nil {
		return nil, 0, fmt.Errorf("find authors: %w", err)
	}

	res := make([]domain.Author, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res, total, nil
}

// QueryPosts lists posts newest first
func (s *Store) QueryPosts(ctx context.Context, q store.PostQuery) ([]domain.Post, int64, error) {
	filter := postsFilter(q)
	total, err := s.posts.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	var docs []postDoc
	if err := s.findAll(ctx, s.posts, filter, pageOpts("publishDate", q), &docs); err != nil {
		return nil, 0, fmt.Errorf("find posts: %w", err)
	}

	res := make([]domain.Post, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res, total, nil
}

// QueryAggregated lists aggregated posts newest first
func (s *Store) QueryAggregated(ctx context.Context, q store.PostQuery) ([]domain.AggregatedPost, int64, error) {
	filter := aggregatedFilter(q)
	total, err := s.aggregated.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count aggregated posts: %w", err)
	}

	var docs []aggregatedDoc
	if err := s.findAll(ctx, s.aggregated, filter, pageOpts("date", q), &docs); err != nil {
		return nil, 0, fmt.Errorf("find aggregated posts: %w", err)
	}

	res := make([]domain.AggregatedPost, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res, total, nil
}

// GetLogo returns logo url stored on the author record
func (s *Store) GetLogo(ctx context.Context, sourceID string) (string, error) {
	var doc struct {
		LogoURL string `bson:"logoUrl"`
	}
	opts := options.FindOne().SetProjection(bson.M{"logoUrl": 1})
	err := s.authors.FindOne(ctx, bson.M{"id": sourceID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find logo of %s: %w", sourceID, err)
	}
	if doc.LogoURL == "" {
		return "", domain.ErrNotFound
	}
	return doc.LogoURL, nil
}

func (s *Store) findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, docs any) error {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, docs)
}

// pageOpts sorts by the date field descending and applies skip and limit
func pageOpts(dateField string, q store.PostQuery) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: dateField, Value: -1}, {Key: "_id", Value: 1}})
	if q.Skip > 0 {
		opts.SetSkip(int64(q.Skip))
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}
