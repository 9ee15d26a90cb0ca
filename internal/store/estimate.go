package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/desirecabinets/estimator/internal/estimate"
)

// estimateKey is the single slot holding the serialized live estimate.
const estimateKey = "estimate"

// LoadEstimate reads the persisted estimate. A missing or unparsable blob is
// not an error: the caller gets a fresh default estimate and the failure is
// only logged. Loaded documents pass through MigrateShape first.
func (s *Store) LoadEstimate() *estimate.Estimate {
	raw, ok, err := s.Get(estimateKey)
	if err != nil {
		logrus.WithError(err).Warn("failed to read saved estimate, starting fresh")
		return estimate.New(time.Now())
	}
	if !ok {
		return estimate.New(time.Now())
	}

	var est estimate.Estimate
	if err := json.Unmarshal([]byte(raw), &est); err != nil {
		logrus.WithError(err).Warn("saved estimate is not valid JSON, starting fresh")
		return estimate.New(time.Now())
	}

	MigrateShape(&est)
	return &est
}

// MigrateShape upgrades older persisted documents in place. Documents written
// before the multi-room layout have no rooms list; they gain one default room.
// A missing discount type defaults to percent.
func MigrateShape(est *estimate.Estimate) {
	if len(est.Rooms) == 0 {
		est.Rooms = []estimate.Room{estimate.NewRoom()}
	}
	for i := range est.Rooms {
		if est.Rooms[i].Addons == nil {
			est.Rooms[i].Addons = map[string]estimate.AddonSelection{}
		}
	}
	if est.DiscountType == "" {
		est.DiscountType = estimate.DiscountPercent
	}
}

// SaveEstimate serializes the estimate into the slot, unconditionally
// overwriting prior content. Last write wins.
func (s *Store) SaveEstimate(est *estimate.Estimate) error {
	raw, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("marshal estimate: %w", err)
	}
	return s.Set(estimateKey, string(raw))
}
