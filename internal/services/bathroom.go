package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

var (
	// ErrBathroomNotFound is returned when an id lookup misses.
	ErrBathroomNotFound = errors.New("bathroom not found")
	// ErrMalformedImport is returned when the import payload is not a JSON
	// array of well-shaped records. Nothing is persisted in that case.
	ErrMalformedImport = errors.New("malformed import payload")
)

// BathroomReader defines read operations on bathroom records.
type BathroomReader interface {
	GetWithinArea(ctx context.Context, box models.BoundingBox) ([]models.BathroomDB, error)
	GetApproved(ctx context.Context) ([]models.BathroomDB, error)
}

// BathroomWriter defines write operations on bathroom records.
type BathroomWriter interface {
	Save(ctx context.Context, bathroom models.BathroomDB) error
	SaveBatch(ctx context.Context, bathrooms []models.BathroomDB) error
	Approve(ctx context.Context, bathroomID uuid.UUID) (*models.BathroomDB, error)
	DeleteAll(ctx context.Context) error
}

// BathroomCache caches the approved listing.
type BathroomCache interface {
	GetApproved(ctx context.Context) ([]models.BathroomDB, error)
	SetApproved(ctx context.Context, bathrooms []models.BathroomDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// moderationEvent is published to Kafka on every record mutation.
type moderationEvent struct {
	EventID    string    `json:"event_id"`
	BathroomID string    `json:"bathroom_id"`
	Action     string    `json:"action"` // submitted, approved, imported
	Approved   bool      `json:"approved"`
	Timestamp  time.Time `json:"timestamp"`
}

// BathroomService handles bathroom record lifecycle and spatial queries.
type BathroomService struct {
	writeRepo   BathroomWriter
	readRepo    BathroomReader
	cacheRepo   BathroomCache
	kafkaWriter KafkaWriter
}

// NewBathroomService creates a new BathroomService.
func NewBathroomService(
	writeRepo BathroomWriter,
	readRepo BathroomReader,
	cacheRepo BathroomCache,
	kafkaWriter KafkaWriter,
) *BathroomService {
	return &BathroomService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a moderation event to Kafka. Failures are logged
// and never fail the request.
func (s *BathroomService) publishEvent(ctx context.Context, bathroom models.BathroomDB, action string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "bathroom_id", bathroom.BathroomID)
		return
	}

	evt := moderationEvent{
		EventID:    uuid.NewString(),
		BathroomID: bathroom.BathroomID.String(),
		Action:     action,
		Approved:   bathroom.Approved,
		Timestamp:  time.Now(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal moderation event", "bathroom_id", evt.BathroomID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.BathroomID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish moderation event", "bathroom_id", evt.BathroomID, "error", err)
	} else {
		logger.Log.Infow("moderation event published", "bathroom_id", evt.BathroomID, "action", action)
	}
}

// invalidateCache drops the cached approved listing. Cache errors are
// logged and never surfaced.
func (s *BathroomService) invalidateCache(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate bathroom cache", "error", err)
	}
}

// importRecord mirrors BathroomAttributes with pointer fields so missing
// keys in the payload can be told apart from zero values.
type importRecord struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Zip       *string  `json:"zip"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Hours     *string  `json:"hours"`
	Remarks   *string  `json:"remarks"`
}

func (r importRecord) wellShaped() bool {
	return r.Name != nil && r.Address != nil && r.Zip != nil &&
		r.Latitude != nil && r.Longitude != nil && r.Hours != nil && r.Remarks != nil
}

// ImportBatch parses a JSON array of records and persists them all as
// pre-approved in a single batch. If any record is malformed nothing is
// persisted and ErrMalformedImport is returned.
func (s *BathroomService) ImportBatch(ctx context.Context, data []byte) ([]models.BathroomDB, error) {
	var raw []importRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Log.Errorw("failed to decode import payload", "error", err)
		return nil, ErrMalformedImport
	}

	now := time.Now()
	bathrooms := make([]models.BathroomDB, 0, len(raw))
	for _, rec := range raw {
		if !rec.wellShaped() {
			logger.Log.Errorw("import record missing required fields")
			return nil, ErrMalformedImport
		}
		bathrooms = append(bathrooms, models.BathroomDB{
			BathroomID: uuid.New(),
			Name:       *rec.Name,
			Address:    *rec.Address,
			Zip:        *rec.Zip,
			Latitude:   *rec.Latitude,
			Longitude:  *rec.Longitude,
			Hours:      *rec.Hours,
			Remarks:    *rec.Remarks,
			Approved:   true, // bulk-imported data is pre-trusted
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := s.writeRepo.SaveBatch(ctx, bathrooms); err != nil {
		logger.Log.Errorw("failed to save import batch", "count", len(bathrooms), "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	for _, b := range bathrooms {
		s.publishEvent(ctx, b, "imported")
	}

	return bathrooms, nil
}

// Submit persists a single user submission as pending moderation and
// returns it immediately; submission does not block on approval.
func (s *BathroomService) Submit(ctx context.Context, attrs models.BathroomAttributes) (*models.BathroomDB, error) {
	now := time.Now()
	bathroom := models.BathroomDB{
		BathroomID: uuid.New(),
		Name:       attrs.Name,
		Address:    attrs.Address,
		Zip:        attrs.Zip,
		Latitude:   attrs.Latitude,
		Longitude:  attrs.Longitude,
		Hours:      attrs.Hours,
		Remarks:    attrs.Remarks,
		Approved:   false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.writeRepo.Save(ctx, bathroom); err != nil {
		logger.Log.Errorw("failed to save bathroom", "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, bathroom, "submitted")

	return &bathroom, nil
}

// Approve transitions a record to approved and refreshes updated_at.
// Approving an already-approved record is idempotent.
func (s *BathroomService) Approve(ctx context.Context, bathroomID uuid.UUID) (*models.BathroomDB, error) {
	bathroom, err := s.writeRepo.Approve(ctx, bathroomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBathroomNotFound
		}
		logger.Log.Errorw("failed to approve bathroom", "bathroom_id", bathroomID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, *bathroom, "approved")

	return bathroom, nil
}

// GetWithinArea returns every record inside the bounding box, including
// unapproved submissions. The asymmetry with ListApproved is deliberate.
func (s *BathroomService) GetWithinArea(ctx context.Context, box models.BoundingBox) ([]models.BathroomDB, error) {
	return s.readRepo.GetWithinArea(ctx, box)
}

// ListApproved returns the approved listing, cache-aside through Redis.
func (s *BathroomService) ListApproved(ctx context.Context) ([]models.BathroomDB, error) {
	if s.cacheRepo != nil {
		cached, err := s.cacheRepo.GetApproved(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	bathrooms, err := s.readRepo.GetApproved(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetApproved(ctx, bathrooms); err != nil {
			logger.Log.Errorw("failed to cache approved listing", "error", err)
		}
	}

	return bathrooms, nil
}

// ClearAll deletes every record unconditionally. Intended for test/reset use.
func (s *BathroomService) ClearAll(ctx context.Context) error {
	if err := s.writeRepo.DeleteAll(ctx); err != nil {
		logger.Log.Errorw("failed to clear bathrooms", "error", err)
		return err
	}
	s.invalidateCache(ctx)
	return nil
}
