package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

func bathroomColumns() []string {
	return []string{"bathroom_id", "name", "address", "zip", "latitude", "longitude", "hours", "remarks", "approved", "created_at", "updated_at"}
}

func sampleBathroom(approved bool) models.BathroomDB {
	now := time.Now()
	return models.BathroomDB{
		BathroomID: uuid.New(),
		Name:       "Bryant Park Restroom",
		Address:    "476 5th Ave",
		Zip:        "10018",
		Latitude:   40.7536,
		Longitude:  -73.9832,
		Hours:      "8am-8pm",
		Remarks:    "clean",
		Approved:   approved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestBathroomReadRepository_GetWithinArea(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomReadRepository(db)

	b := sampleBathroom(false)

	// latitude range is [bottomRightLat, topLeftLat], longitude [topLeftLon, bottomRightLon]
	mock.ExpectQuery("SELECT bathroom_id, name, address, zip, latitude, longitude").
		WithArgs(0.0, 10.0, -10.0, 10.0).
		WillReturnRows(sqlmock.NewRows(bathroomColumns()).
			AddRow(b.BathroomID, b.Name, b.Address, b.Zip, 5.0, 0.0, b.Hours, b.Remarks, b.Approved, b.CreatedAt, b.UpdatedAt))

	box := models.BoundingBox{TopLeftLat: 10, TopLeftLon: -10, BottomRightLat: 0, BottomRightLon: 10}
	bathrooms, err := repo.GetWithinArea(context.Background(), box)
	assert.NoError(t, err)
	assert.Len(t, bathrooms, 1)
	assert.Equal(t, b.BathroomID, bathrooms[0].BathroomID)
	assert.False(t, bathrooms[0].Approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomReadRepository_GetApproved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomReadRepository(db)

	b := sampleBathroom(true)

	mock.ExpectQuery("SELECT bathroom_id, name, address, zip, latitude, longitude").
		WillReturnRows(sqlmock.NewRows(bathroomColumns()).
			AddRow(b.BathroomID, b.Name, b.Address, b.Zip, b.Latitude, b.Longitude, b.Hours, b.Remarks, true, b.CreatedAt, b.UpdatedAt))

	bathrooms, err := repo.GetApproved(context.Background())
	assert.NoError(t, err)
	assert.Len(t, bathrooms, 1)
	assert.True(t, bathrooms[0].Approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	mock.ExpectExec("INSERT INTO bathrooms").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), sampleBathroom(false)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_SaveBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bathrooms").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.SaveBatch(context.Background(), []models.BathroomDB{sampleBathroom(true), sampleBathroom(true)})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_SaveBatch_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bathrooms").
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := repo.SaveBatch(context.Background(), []models.BathroomDB{sampleBathroom(true)})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_SaveBatch_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	// no statements expected for an empty batch
	assert.NoError(t, repo.SaveBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_Approve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	b := sampleBathroom(true)

	mock.ExpectQuery("UPDATE bathrooms").
		WithArgs(b.BathroomID).
		WillReturnRows(sqlmock.NewRows(bathroomColumns()).
			AddRow(b.BathroomID, b.Name, b.Address, b.Zip, b.Latitude, b.Longitude, b.Hours, b.Remarks, true, b.CreatedAt, b.UpdatedAt))

	approved, err := repo.Approve(context.Background(), b.BathroomID)
	assert.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_Approve_Miss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	id := uuid.New()

	mock.ExpectQuery("UPDATE bathrooms").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	approved, err := repo.Approve(context.Background(), id)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBathroomWriteRepository_DeleteAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBathroomWriteRepository(db)

	mock.ExpectExec("DELETE FROM bathrooms").
		WillReturnResult(sqlmock.NewResult(0, 5))

	assert.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
