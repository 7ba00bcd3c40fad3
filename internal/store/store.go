// Package store wraps the document database behind a small
// collection-oriented interface so handlers never touch driver types.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is the generic shape of a stored record, with the store's
// native "_id" field present on reads.
type Document = bson.M

var (
	// ErrUnavailable means no store connection was ever established.
	ErrUnavailable = errors.New("store: not connected")
	// ErrNotFound covers both an absent document and a malformed id.
	ErrNotFound = errors.New("store: document not found")
)

type Store interface {
	// CreateDocument inserts a record and returns its new id as an
	// opaque hex string.
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	// GetDocuments returns every document in a collection; a missing or
	// empty collection yields an empty slice, not an error. Order is
	// unspecified.
	GetDocuments(ctx context.Context, collection string) ([]Document, error)
	// GetDocumentByID resolves one document by its opaque id. An id that
	// is not in the store's native format reports ErrNotFound.
	GetDocumentByID(ctx context.Context, collection, id string) (Document, error)
	// CountDocuments reports how many documents a collection holds.
	CountDocuments(ctx context.Context, collection string) (int64, error)
	// CollectionNames lists the collections present in the database.
	CollectionNames(ctx context.Context) ([]string, error)

	Name() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DocumentID extracts the opaque id from a document's native "_id"
// field, or "" when absent.
func DocumentID(doc Document) string {
	switch id := doc["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

// Unavailable stands in for a store whose connection failed at startup.
// Every operation fails with ErrUnavailable; diagnostics stay reachable.
type Unavailable struct{}

func (Unavailable) CreateDocument(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) GetDocuments(context.Context, string) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) GetDocumentByID(context.Context, string, string) (Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) CountDocuments(context.Context, string) (int64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) CollectionNames(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Name() string { return "" }

func (Unavailable) Ping(context.Context) error { return ErrUnavailable }

func (Unavailable) Close(context.Context) error { return nil }
