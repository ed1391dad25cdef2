package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bathroomfinder/bathroom-finder/internal/models"
	"github.com/bathroomfinder/bathroom-finder/internal/services"
)

func TestBathroomService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockBathroomWriter(ctrl)
	reader := services.NewMockBathroomReader(ctrl)
	cache := services.NewMockBathroomCache(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewBathroomService(writer, reader, cache, kafkaWriter)

	var saved models.BathroomDB
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b models.BathroomDB) error {
			saved = b
			return nil
		})
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	attrs := models.BathroomAttributes{
		Name:      "Bryant Park Restroom",
		Address:   "476 5th Ave",
		Zip:       "10018",
		Latitude:  40.7536,
		Longitude: -73.9832,
		Hours:     "8am-8pm",
		Remarks:   "clean",
	}

	bathroom, err := svc.Submit(context.Background(), attrs)
	assert.NoError(t, err)
	assert.False(t, bathroom.Approved, "user submissions start pending")
	assert.NotEqual(t, uuid.Nil, bathroom.BathroomID)
	assert.Equal(t, attrs.Name, bathroom.Name)
	assert.Equal(t, bathroom.CreatedAt, bathroom.UpdatedAt)
	assert.Equal(t, saved.BathroomID, bathroom.BathroomID)
}

func TestBathroomService_Submit_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockBathroomWriter(ctrl)
	reader := services.NewMockBathroomReader(ctrl)

	svc := services.NewBathroomService(writer, reader, nil, nil)

	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	bathroom, err := svc.Submit(context.Background(), models.BathroomAttributes{Name: "x"})
	assert.Error(t, err)
	assert.Nil(t, bathroom)
}

func TestBathroomService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	approved := &models.BathroomDB{BathroomID: id, Approved: true, UpdatedAt: time.Now()}

	tests := []struct {
		name      string
		writerRes *models.BathroomDB
		writerErr error
		wantErr   error
	}{
		{name: "approves pending record", writerRes: approved},
		{name: "idempotent on approved record", writerRes: approved},
		{name: "not found", writerErr: sql.ErrNoRows, wantErr: services.ErrBathroomNotFound},
		{name: "storage error", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := services.NewMockBathroomWriter(ctrl)
			reader := services.NewMockBathroomReader(ctrl)
			cache := services.NewMockBathroomCache(ctrl)
			kafkaWriter := services.NewMockKafkaWriter(ctrl)

			svc := services.NewBathroomService(writer, reader, cache, kafkaWriter)

			writer.EXPECT().Approve(gomock.Any(), id).Return(tt.writerRes, tt.writerErr)
			if tt.writerErr == nil {
				cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
				kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			bathroom, err := svc.Approve(context.Background(), id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, bathroom)
			} else {
				assert.NoError(t, err)
				assert.True(t, bathroom.Approved)
			}
		})
	}
}

func TestBathroomService_ImportBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validPayload := []byte(`[
		{"name":"A","address":"1 Main St","zip":"10001","latitude":10,"longitude":20,"hours":"24/7","remarks":""},
		{"name":"B","address":"2 Main St","zip":"10002","latitude":99,"longitude":99,"hours":"9-5","remarks":"ok"}
	]`)

	t.Run("imports all records pre-approved", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)
		cache := services.NewMockBathroomCache(ctrl)
		kafkaWriter := services.NewMockKafkaWriter(ctrl)

		svc := services.NewBathroomService(writer, reader, cache, kafkaWriter)

		writer.EXPECT().
			SaveBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bs []models.BathroomDB) error {
				assert.Len(t, bs, 2)
				for _, b := range bs {
					assert.True(t, b.Approved)
					assert.NotEqual(t, uuid.Nil, b.BathroomID)
				}
				return nil
			})
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		bathrooms, err := svc.ImportBatch(context.Background(), validPayload)
		assert.NoError(t, err)
		assert.Len(t, bathrooms, 2)
		assert.Equal(t, "A", bathrooms[0].Name)
		assert.Equal(t, 99.0, bathrooms[1].Latitude)
	})

	t.Run("one malformed record fails the whole batch", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)

		svc := services.NewBathroomService(writer, reader, nil, nil)

		// second record is missing latitude: nothing may be persisted
		payload := []byte(`[
			{"name":"A","address":"1 Main St","zip":"10001","latitude":10,"longitude":20,"hours":"24/7","remarks":""},
			{"name":"B","address":"2 Main St","zip":"10002","longitude":99,"hours":"9-5","remarks":"ok"}
		]`)

		bathrooms, err := svc.ImportBatch(context.Background(), payload)
		assert.ErrorIs(t, err, services.ErrMalformedImport)
		assert.Nil(t, bathrooms)
	})

	t.Run("invalid json", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)

		svc := services.NewBathroomService(writer, reader, nil, nil)

		bathrooms, err := svc.ImportBatch(context.Background(), []byte(`{"not":"an array"}`))
		assert.ErrorIs(t, err, services.ErrMalformedImport)
		assert.Nil(t, bathrooms)
	})

	t.Run("batch save error", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)

		svc := services.NewBathroomService(writer, reader, nil, nil)

		writer.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		bathrooms, err := svc.ImportBatch(context.Background(), validPayload)
		assert.Error(t, err)
		assert.Nil(t, bathrooms)
	})
}

func TestBathroomService_GetWithinArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockBathroomWriter(ctrl)
	reader := services.NewMockBathroomReader(ctrl)

	svc := services.NewBathroomService(writer, reader, nil, nil)

	box := models.BoundingBox{TopLeftLat: 10, TopLeftLon: -10, BottomRightLat: 0, BottomRightLon: 10}
	// the area query deliberately returns unapproved records too
	expected := []models.BathroomDB{
		{BathroomID: uuid.New(), Latitude: 5, Longitude: 0, Approved: true},
		{BathroomID: uuid.New(), Latitude: 1, Longitude: 9, Approved: false},
	}

	reader.EXPECT().GetWithinArea(gomock.Any(), box).Return(expected, nil)

	bathrooms, err := svc.GetWithinArea(context.Background(), box)
	assert.NoError(t, err)
	assert.Equal(t, expected, bathrooms)
}

func TestBathroomService_ListApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	approved := []models.BathroomDB{{BathroomID: uuid.New(), Approved: true}}

	t.Run("cache hit", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)
		cache := services.NewMockBathroomCache(ctrl)

		svc := services.NewBathroomService(writer, reader, cache, nil)

		cache.EXPECT().GetApproved(gomock.Any()).Return(approved, nil)

		bathrooms, err := svc.ListApproved(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, approved, bathrooms)
	})

	t.Run("cache miss falls back to store and refills", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)
		cache := services.NewMockBathroomCache(ctrl)

		svc := services.NewBathroomService(writer, reader, cache, nil)

		cache.EXPECT().GetApproved(gomock.Any()).Return(nil, nil)
		reader.EXPECT().GetApproved(gomock.Any()).Return(approved, nil)
		cache.EXPECT().SetApproved(gomock.Any(), approved).Return(nil)

		bathrooms, err := svc.ListApproved(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, approved, bathrooms)
	})

	t.Run("cache error treated as miss", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)
		cache := services.NewMockBathroomCache(ctrl)

		svc := services.NewBathroomService(writer, reader, cache, nil)

		cache.EXPECT().GetApproved(gomock.Any()).Return(nil, errors.New("redis down"))
		reader.EXPECT().GetApproved(gomock.Any()).Return(approved, nil)
		cache.EXPECT().SetApproved(gomock.Any(), approved).Return(errors.New("redis down"))

		bathrooms, err := svc.ListApproved(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, approved, bathrooms)
	})

	t.Run("store error", func(t *testing.T) {
		writer := services.NewMockBathroomWriter(ctrl)
		reader := services.NewMockBathroomReader(ctrl)

		svc := services.NewBathroomService(writer, reader, nil, nil)

		reader.EXPECT().GetApproved(gomock.Any()).Return(nil, errors.New("db error"))

		bathrooms, err := svc.ListApproved(context.Background())
		assert.Error(t, err)
		assert.Nil(t, bathrooms)
	})
}

func TestBathroomService_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockBathroomWriter(ctrl)
	reader := services.NewMockBathroomReader(ctrl)
	cache := services.NewMockBathroomCache(ctrl)

	svc := services.NewBathroomService(writer, reader, cache, nil)

	writer.EXPECT().DeleteAll(gomock.Any()).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	assert.NoError(t, svc.ClearAll(context.Background()))
}

func TestBathroomService_KafkaFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockBathroomWriter(ctrl)
	reader := services.NewMockBathroomReader(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewBathroomService(writer, reader, nil, kafkaWriter)

	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error"))

	bathroom, err := svc.Submit(context.Background(), models.BathroomAttributes{Name: "x"})
	assert.NoError(t, err)
	assert.NotNil(t, bathroom)
}
