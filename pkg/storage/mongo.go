package storage

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/pacmaze/pkg/errors"
)

// Collection is the MongoDB collection records are stored in.
const Collection = "renders"

// MongoStore persists records in MongoDB.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoRecord is the stored document. BSON has no unsigned 64-bit integer,
// so the seed is kept as a decimal string.
type mongoRecord struct {
	ID        string    `bson:"_id"`
	Login     string    `bson:"login"`
	Theme     string    `bson:"theme"`
	Seed      string    `bson:"seed"`
	Rows      int       `bson:"rows"`
	Cols      int       `bson:"cols"`
	Total     int       `bson:"total"`
	SVG       []byte    `bson:"svg"`
	CreatedAt time.Time `bson:"created_at"`
}

// NewMongoStore connects to uri, verifies the connection and ensures the
// lookup index exists.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = "pacmaze"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "ping mongodb")
	}

	coll := client.Database(database).Collection(Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "login", Value: 1}, {Key: "theme", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create index on %s", Collection)
	}
	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Save(ctx context.Context, r *Record) error {
	prepare(r)
	doc := mongoRecord{
		ID:        r.ID,
		Login:     r.Login,
		Theme:     r.Theme,
		Seed:      strconv.FormatUint(r.Seed, 10),
		Rows:      r.Rows,
		Cols:      r.Cols,
		Total:     r.Total,
		SVG:       r.SVG,
		CreatedAt: r.CreatedAt,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save render %s", r.ID)
	}
	return nil
}

func (s *MongoStore) Latest(ctx context.Context, login, theme string) (*Record, error) {
	login = strings.ToLower(login)
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var doc mongoRecord
	err := s.coll.FindOne(ctx, bson.M{"login": login, "theme": theme}, opts).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(login, theme)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load render for %s", login)
	}

	seed, _ := strconv.ParseUint(doc.Seed, 10, 64)
	return &Record{
		ID:        doc.ID,
		Login:     doc.Login,
		Theme:     doc.Theme,
		Seed:      seed,
		Rows:      doc.Rows,
		Cols:      doc.Cols,
		Total:     doc.Total,
		SVG:       doc.SVG,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Close disconnects, waiting at most five seconds for in-flight operations.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
