package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implementa Store sobre un archivo SQLite local. Es el backend
// por defecto: cero dependencias externas en ejecución, como corresponde a
// una tienda demo de un solo proceso.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore abre (o crea) el archivo y asegura la tabla de blobs.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	// Un solo escritor a la vez; SQLite se queja con más conexiones.
	db.SetMaxOpenConns(1)

	schema := `CREATE TABLE IF NOT EXISTS kv_blobs (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear tabla kv_blobs: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get lee el blob de una clave.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_blobs WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return value, nil
}

// SetAll escribe todas las entradas dentro de una transacción.
func (s *SQLiteStore) SetAll(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range entries {
		if value == nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM kv_blobs WHERE key = ?`, key); err != nil {
				return fmt.Errorf("borrar clave %s: %w", key, err)
			}
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO kv_blobs (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("escribir clave %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra el archivo.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
