package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"aesvec/internal/models"
	"aesvec/internal/services/vector"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("run not found")

// Store keeps generation runs in Postgres.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return newStore(db)
}

// gormConfig keeps gorm's own logging on stderr; stdout carries fixtures.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stderr, "", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

func newStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.Run{}, &models.Vector{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return &Store{db: db}, nil
}

func sp(s string) *string { return &s }

// NewRun converts generated vectors into a run ready to be recorded.
func NewRun(source string, f vector.Format, count int, vs []vector.Vector) models.Run {
	if count <= 0 {
		count = 1
	}
	now := time.Now()
	run := models.Run{
		ID:        uuid.NewString(),
		Source:    source,
		Format:    string(f),
		Count:     count,
		CreatedAt: now,
	}
	for _, v := range vs {
		row := models.Vector{
			ID:            uuid.NewString(),
			RunID:         run.ID,
			Case:          v.Case,
			Label:         v.Label,
			Index:         v.Index,
			Mode:          string(v.Mode),
			KeyBits:       v.KeyBits,
			KeyHex:        hex.EncodeToString(v.Key),
			PlaintextHex:  hex.EncodeToString(v.Plaintext),
			CiphertextHex: hex.EncodeToString(v.Ciphertext),
			Params:        params(v),
			CreatedAt:     now,
		}
		if v.IV != nil {
			row.IVHex = sp(hex.EncodeToString(v.IV))
		}
		run.Vectors = append(run.Vectors, row)
	}
	return run
}

func params(v vector.Vector) models.JSONB {
	p := map[string]any{"mode": v.Mode, "round_trip": v.RoundTrip}
	if s, ok := vector.Lookup(v.Case); ok {
		p["key_hash"] = s.KeyHash
		p["key_input"] = fmt.Sprintf("%s%d", s.KeyPrefix, v.Index)
		p["data_hash"] = s.DataHash
		p["data_input"] = fmt.Sprintf("%s%d", s.DataPrefix, v.Index)
		if s.KeyLen > 0 {
			p["key_len"] = s.KeyLen
		}
	}
	if bits := v.Mode.SegmentBits(); bits > 0 {
		p["segment_bits"] = bits
	}
	b, _ := json.Marshal(p)
	return models.JSONB(b)
}

// Record writes the run and its vectors in one transaction.
func (s *Store) Record(ctx context.Context, run models.Run) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Vectors").Create(&run).Error; err != nil {
			return err
		}
		for i := range run.Vectors {
			if err := tx.Create(&run.Vectors[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	var runs []models.Run
	err := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}

func (s *Store) GetRun(ctx context.Context, id string) (models.Run, error) {
	var run models.Run
	err := s.db.WithContext(ctx).
		Preload("Vectors", func(db *gorm.DB) *gorm.DB { return db.Order("scenario, idx") }).
		First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Run{}, ErrNotFound
	}
	return run, err
}
