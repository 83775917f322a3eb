package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/google/uuid"
)

// Document is one record of a collection: a stable id plus an untyped field
// map, exactly what the database hands back before an entity repository
// normalizes it.
type Document struct {
	ID     string
	Fields map[string]any
}

// DocumentStore provides per-collection CRUD over JSON documents stored in a
// single table. Field names passed to Query and ListOrdered come from
// repository code, never from user input.
type DocumentStore struct {
	db *DB
}

func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Add inserts a new document and returns the generated id.
func (s *DocumentStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	id := uuid.New().String()
	query := `INSERT INTO document (collection, id, data) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return id, nil
}

// Get fetches one document by id.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	query := `SELECT data FROM document WHERE collection = ? AND id = ?`
	var data string
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document from %s: %w", collection, err)
	}
	return decodeDocument(collection, id, data)
}

// List fetches the full collection in no guaranteed order.
func (s *DocumentStore) List(ctx context.Context, collection string) ([]*Document, error) {
	query := `SELECT id, data FROM document WHERE collection = ?`
	return s.selectDocuments(ctx, collection, query, collection)
}

// ListOrdered fetches the full collection ordered by a document field.
func (s *DocumentStore) ListOrdered(ctx context.Context, collection, field string) ([]*Document, error) {
	query := fmt.Sprintf(
		`SELECT id, data FROM document WHERE collection = ? ORDER BY json_extract(data, '$.%s')`, field)
	return s.selectDocuments(ctx, collection, query, collection)
}

// Query fetches the documents whose field equals value.
func (s *DocumentStore) Query(ctx context.Context, collection, field string, value any) ([]*Document, error) {
	query := fmt.Sprintf(
		`SELECT id, data FROM document WHERE collection = ? AND json_extract(data, '$.%s') = ?`, field)
	return s.selectDocuments(ctx, collection, query, collection, value)
}

// Update applies a partial merge to an existing document. There is no
// read-before-write; concurrent edits are last-write-wins.
func (s *DocumentStore) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	patch, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("failed to marshal patch: %w", err)
	}

	query := `UPDATE document SET data = json_patch(data, ?) WHERE collection = ? AND id = ?`
	result, err := s.db.ExecContext(ctx, query, string(patch), collection, id)
	if err != nil {
		return fmt.Errorf("failed to update document in %s: %w", collection, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(collection, id)
	}
	return nil
}

// Delete removes a document. Deleting an absent id is a no-op: the end state
// (document gone) already holds.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM document WHERE collection = ? AND id = ?`
	if _, err := s.db.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("failed to delete document from %s: %w", collection, err)
	}
	return nil
}

func (s *DocumentStore) selectDocuments(ctx context.Context, collection, query string, args ...any) ([]*Document, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents from %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc, err := decodeDocument(collection, id, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

func decodeDocument(collection, id, data string) (*Document, error) {
	fields := map[string]any{}
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s/%s: %w", collection, id, err)
	}
	return &Document{ID: id, Fields: fields}, nil
}

// Field accessors used by the entity repositories when mapping raw documents.

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	return v, ok
}

func stringOrDefault(fields map[string]any, key, def string) string {
	if v, ok := stringField(fields, key); ok && v != "" {
		return v
	}
	return def
}

func optionalString(fields map[string]any, key string) *string {
	if v, ok := stringField(fields, key); ok {
		return &v
	}
	return nil
}

func numberField(fields map[string]any, key string) (float64, bool) {
	v, ok := fields[key].(float64)
	return v, ok
}

func stringSliceField(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func timeField(fields map[string]any, key string) (time.Time, bool) {
	s, ok := stringField(fields, key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func optionalTime(fields map[string]any, key string) *time.Time {
	if t, ok := timeField(fields, key); ok {
		return &t
	}
	return nil
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
