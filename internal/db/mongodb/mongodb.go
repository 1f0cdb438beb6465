// Package mongodb implements the company and employee repositories on
// MongoDB collections. Identifiers are ObjectID hex strings and the _id
// order doubles as insertion order.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/employees/internal/errors"
	"github.com/gartstein/employees/internal/pkg/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	companiesCollection = "companies"
	employeesCollection = "employees"
)

// Repository owns the client and hands out per-entity repositories.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewRepository connects to uri, verifies the connection and ensures the
// secondary indexes used by employee filters exist.
func NewRepository(ctx context.Context, uri, database string) (*Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	r := &Repository{client: client, db: client.Database(database)}
	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return r, nil
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(employeesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "gender", Value: 1}}},
		{Keys: bson.D{{Key: "companyId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}
	return nil
}

func (r *Repository) Companies() *CompanyRepository {
	return &CompanyRepository{coll: r.db.Collection(companiesCollection)}
}

func (r *Repository) Employees() *EmployeeRepository {
	return &EmployeeRepository{coll: r.db.Collection(employeesCollection)}
}

// Drop removes both collections. Used to reset state between test runs.
func (r *Repository) Drop(ctx context.Context) error {
	if err := r.db.Collection(companiesCollection).Drop(ctx); err != nil {
		return err
	}
	return r.db.Collection(employeesCollection).Drop(ctx)
}

func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// objectID parses a hex id. Malformed ids cannot exist in the collection,
// so they are reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, e.ErrNotFound
	}
	return oid, nil
}

// newID returns the parsed id when hex is a valid ObjectID, or a fresh one
// when hex is empty.
func newID(hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NewObjectID(), nil
	}
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not an ObjectID", e.ErrInvalidInput, hex)
	}
	return oid, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	opts = append([]*options.FindOptions{options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})}, opts...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findPage[T any](ctx context.Context, coll *mongo.Collection, page, pageSize int) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, err
	}
	skip, ok := pagination.Offset(page, pageSize)
	if !ok || int64(skip) >= total {
		return []T{}, total, nil
	}
	docs, err := findAll[T](ctx, coll, bson.D{},
		options.Find().
			SetSkip(int64(skip)).
			SetLimit(int64(pageSize)),
	)
	return docs, total, err
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func exists(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}
	count, err := coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func replace(ctx context.Context, coll *mongo.Collection, oid primitive.ObjectID, doc interface{}) error {
	result, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return e.ErrNotFound
	}
	return nil
}

func remove(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}
	result, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
