package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/ansitheme/internal/models"
)

// Palette repository errors.
var (
	ErrPaletteNotFound = errors.New("palette not found")
	ErrInvalidPalette  = errors.New("invalid palette record")
)

// PaletteRepository handles derived palette persistence.
type PaletteRepository struct {
	db *DB
}

// NewPaletteRepository creates a new PaletteRepository.
func NewPaletteRepository(db *DB) *PaletteRepository {
	return &PaletteRepository{db: db}
}

const paletteColumns = `id, source_hash, theme_name, dark, role_count, roles_json, created_at, updated_at`

// Save inserts the record, or replaces the roles of the record with the same
// source hash. The stored ID and creation time are written back to record.
func (r *PaletteRepository) Save(ctx context.Context, record *models.PaletteRecord) error {
	if record.SourceHash == "" || len(record.Roles) == 0 {
		return ErrInvalidPalette
	}

	now := time.Now().UTC()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	if record.RoleCount == 0 {
		record.RoleCount = len(record.Roles)
	}

	rolesJSON, err := json.Marshal(record.Roles)
	if err != nil {
		return fmt.Errorf("failed to marshal roles: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO palettes (`+paletteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_hash) DO UPDATE SET
			theme_name = excluded.theme_name,
			dark = excluded.dark,
			role_count = excluded.role_count,
			roles_json = excluded.roles_json,
			updated_at = excluded.updated_at
	`,
		record.ID,
		record.SourceHash,
		nullString(record.ThemeName),
		boolToInt(record.Dark),
		record.RoleCount,
		string(rolesJSON),
		record.CreatedAt.Format(time.RFC3339),
		record.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}

	stored, err := r.GetByHash(ctx, record.SourceHash)
	if err != nil {
		return err
	}
	record.ID = stored.ID
	record.CreatedAt = stored.CreatedAt
	return nil
}

// Get retrieves a palette by ID.
func (r *PaletteRepository) Get(ctx context.Context, id string) (*models.PaletteRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE id = ?`, id)
	return r.scanPalette(row)
}

// GetByHash retrieves a palette by source hash.
func (r *PaletteRepository) GetByHash(ctx context.Context, hash string) (*models.PaletteRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE source_hash = ?`, hash)
	return r.scanPalette(row)
}

// List returns palettes matching q, most recently updated first.
func (r *PaletteRepository) List(ctx context.Context, q models.PaletteQuery) ([]*models.PaletteRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + paletteColumns + ` FROM palettes WHERE 1=1`
	args := []any{}
	if q.ThemeName != nil {
		query += ` AND theme_name = ?`
		args = append(args, *q.ThemeName)
	}
	if q.Dark != nil {
		query += ` AND dark = ?`
		args = append(args, boolToInt(*q.Dark))
	}
	query += ` ORDER BY updated_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query palettes: %w", err)
	}
	defer rows.Close()

	var records []*models.PaletteRecord
	for rows.Next() {
		record, err := r.scanPalette(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating palettes: %w", err)
	}

	return records, nil
}

// Delete removes a palette by ID.
func (r *PaletteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPaletteNotFound
	}
	return nil
}

// Purge removes every palette and reports how many were deleted.
func (r *PaletteRepository) Purge(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM palettes`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge palettes: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PaletteRepository) scanPalette(row rowScanner) (*models.PaletteRecord, error) {
	var record models.PaletteRecord
	var themeName sql.NullString
	var dark int
	var rolesJSON, createdAt, updatedAt string

	err := row.Scan(
		&record.ID,
		&record.SourceHash,
		&themeName,
		&dark,
		&record.RoleCount,
		&rolesJSON,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaletteNotFound
		}
		return nil, fmt.Errorf("failed to scan palette: %w", err)
	}

	record.ThemeName = themeName.String
	record.Dark = dark != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		record.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		record.UpdatedAt = t
	}
	if err := json.Unmarshal([]byte(rolesJSON), &record.Roles); err != nil {
		r.db.logger.Warn().Err(err).Str("palette_id", record.ID).Msg("failed to parse palette roles")
	}

	return &record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
