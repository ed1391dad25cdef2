package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

type BathroomReadRepository struct {
	db *sqlx.DB
}

func NewBathroomReadRepository(db *sqlx.DB) *BathroomReadRepository {
	return &BathroomReadRepository{db: db}
}

// GetWithinArea returns every record whose coordinates fall inside the
// bounding box, approved or not. The containment test is an inclusive
// axis-aligned range scan; boxes crossing the antimeridian match nothing.
func (r *BathroomReadRepository) GetWithinArea(ctx context.Context, box models.BoundingBox) ([]models.BathroomDB, error) {
	const query = `
		SELECT bathroom_id, name, address, zip, latitude, longitude, hours, remarks, approved, created_at, updated_at
		FROM bathrooms
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY created_at
	`

	var bathrooms []models.BathroomDB
	err := r.db.SelectContext(ctx, &bathrooms, query,
		box.BottomRightLat, box.TopLeftLat, box.TopLeftLon, box.BottomRightLon)

	logger.Log.Infow("bathroom query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{box.BottomRightLat, box.TopLeftLat, box.TopLeftLon, box.BottomRightLon},
		"result", len(bathrooms),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return bathrooms, nil
}

// GetApproved returns only records that have passed moderation.
func (r *BathroomReadRepository) GetApproved(ctx context.Context) ([]models.BathroomDB, error) {
	const query = `
		SELECT bathroom_id, name, address, zip, latitude, longitude, hours, remarks, approved, created_at, updated_at
		FROM bathrooms
		WHERE approved = TRUE
		ORDER BY created_at
	`

	var bathrooms []models.BathroomDB
	err := r.db.SelectContext(ctx, &bathrooms, query)

	logger.Log.Infow("bathroom query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(bathrooms),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return bathrooms, nil
}

type BathroomWriteRepository struct {
	db *sqlx.DB
}

func NewBathroomWriteRepository(db *sqlx.DB) *BathroomWriteRepository {
	return &BathroomWriteRepository{db: db}
}

const insertBathroomQuery = `
	INSERT INTO bathrooms (bathroom_id, name, address, zip, latitude, longitude, hours, remarks, approved, created_at, updated_at)
	VALUES (:bathroom_id, :name, :address, :zip, :latitude, :longitude, :hours, :remarks, :approved, :created_at, :updated_at)
`

// Save inserts a single record.
func (r *BathroomWriteRepository) Save(ctx context.Context, bathroom models.BathroomDB) error {
	_, err := r.db.NamedExecContext(ctx, insertBathroomQuery, bathroom)

	logger.Log.Infow("bathroom insert",
		"query", strings.Join(strings.Fields(insertBathroomQuery), " "),
		"args", []any{bathroom.BathroomID, bathroom.Name},
		"error", err,
	)

	return err
}

// SaveBatch inserts all records inside one transaction. Either every
// record persists or none do.
func (r *BathroomWriteRepository) SaveBatch(ctx context.Context, bathrooms []models.BathroomDB) error {
	if len(bathrooms) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin batch transaction", "error", err)
		return err
	}

	_, err = tx.NamedExecContext(ctx, insertBathroomQuery, bathrooms)

	logger.Log.Infow("bathroom batch insert",
		"query", strings.Join(strings.Fields(insertBathroomQuery), " "),
		"result", len(bathrooms),
		"error", err,
	)

	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Approve marks a record as approved and refreshes updated_at, returning
// the updated record. Approving an already-approved record is a no-op
// reassertion. A miss returns (nil, sql.ErrNoRows).
func (r *BathroomWriteRepository) Approve(ctx context.Context, bathroomID uuid.UUID) (*models.BathroomDB, error) {
	const query = `
		UPDATE bathrooms
		SET approved = TRUE, updated_at = NOW()
		WHERE bathroom_id = $1
		RETURNING bathroom_id, name, address, zip, latitude, longitude, hours, remarks, approved, created_at, updated_at
	`

	var bathroom models.BathroomDB
	err := r.db.GetContext(ctx, &bathroom, query, bathroomID)

	logger.Log.Infow("bathroom approve",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bathroomID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &bathroom, nil
}

// DeleteAll removes every record unconditionally.
func (r *BathroomWriteRepository) DeleteAll(ctx context.Context) error {
	const query = `DELETE FROM bathrooms`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("bathroom delete all",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
