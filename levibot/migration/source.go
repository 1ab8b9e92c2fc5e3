package migration

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxDocumentSize is the BSON limit enforced by mongod.
const maxDocumentSize = 16 * 1024 * 1024

// Source yields the raw documents of one legacy collection.
type Source interface {
	Each(ctx context.Context, collection string, fn func(bson.Raw) error) error
}

// MongoSource reads straight from a running MongoDB.
type MongoSource struct {
	db *mongo.Database
}

func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

func (s *MongoSource) Each(ctx context.Context, collection string, fn func(bson.Raw) error) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		if err = fn(cur.Current); err != nil {
			return err
		}
	}
	return cur.Err()
}

// DumpSource reads mongodump output, one <collection>.bson file per collection.
type DumpSource struct {
	dir string
}

func NewDumpSource(dir string) *DumpSource {
	return &DumpSource{dir: dir}
}

func (s *DumpSource) Each(ctx context.Context, collection string, fn func(bson.Raw) error) error {
	path := filepath.Join(s.dir, collection+".bson")
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Dump file not found, skipping",
			slog.String("type", "db"),
			slog.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return readDocuments(ctx, bufio.NewReader(file), fn)
}

// readDocuments walks a stream of length-prefixed BSON documents.
func readDocuments(ctx context.Context, r io.Reader, fn func(bson.Raw) error) error {
	var offset int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		header := make([]byte, 4)
		if _, err := io.ReadFull(r, header); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read document length at byte %d: %w", offset, err)
		}

		length := int64(int32(binary.LittleEndian.Uint32(header)))
		if length <= 4 || length > maxDocumentSize {
			return fmt.Errorf("invalid document length %d at byte %d", length, offset)
		}

		doc := make([]byte, length)
		copy(doc, header)
		if _, err := io.ReadFull(r, doc[4:]); err != nil {
			return fmt.Errorf("failed to read document at byte %d: %w", offset, err)
		}
		offset += length

		if err := fn(bson.Raw(doc)); err != nil {
			return err
		}
	}
}
