package repo

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/codec"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// MigrationReport counts what MigrateLegacy converted and what it dropped.
type MigrationReport struct {
	Trips              int `json:"trips"`
	Events             int `json:"events"`
	SkippedTrips       int `json:"skippedTrips"`
	SkippedItinerary   int `json:"skippedItinerary"`
	UnmatchedItinerary int `json:"unmatchedItinerary"`
}

// MigrateLegacy copies the legacy trip_list and itinerary_list records into
// the structured collections. Legacy trips get deterministic IDs and
// itinerary rows keep theirs, and records already present are left alone, so
// running it again changes nothing. Itinerary rows are attached to the
// structured trip with the same name; rows naming no known trip are counted
// in UnmatchedItinerary. The legacy keys are read, never written.
func (r *Repository) MigrateLegacy(ctx context.Context) (MigrationReport, error) {
	var report MigrationReport

	if err := r.migrateLegacyTrips(ctx, &report); err != nil {
		return report, fmt.Errorf("repo.Repository.MigrateLegacy: %w", err)
	}
	if err := r.migrateLegacyItinerary(ctx, &report); err != nil {
		return report, fmt.Errorf("repo.Repository.MigrateLegacy: %w", err)
	}

	r.log.Info("legacy migration finished",
		"trips", report.Trips,
		"events", report.Events,
		"skipped_trips", report.SkippedTrips,
		"skipped_itinerary", report.SkippedItinerary,
		"unmatched_itinerary", report.UnmatchedItinerary,
	)
	return report, nil
}

func (r *Repository) migrateLegacyTrips(ctx context.Context, report *MigrationReport) error {
	blob, ok, err := r.store.Get(ctx, keyLegacyTrips)
	if err != nil || !ok {
		return err
	}
	legacy, skipped := codec.DecodeLegacyTrips(blob)
	report.SkippedTrips = skipped

	c := r.trips()
	unlock := r.locks.lock(c.key)
	defer unlock()

	// The trips list falls back to the legacy key until first written, so
	// read the structured key directly to see what is really stored.
	stored := []domain.Trip{}
	if raw, ok, err := r.store.Get(ctx, keyTrips); err != nil {
		return err
	} else if ok {
		stored, _ = codec.DecodeList[domain.Trip](raw)
	}

	added := 0
	for _, t := range legacy {
		if indexOf(stored, t.ID) >= 0 {
			continue
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = domain.Now()
		}
		stored = append(stored, t)
		added++
	}
	if added == 0 {
		return nil
	}
	if err := c.write(ctx, stored); err != nil {
		return err
	}
	report.Trips = added
	return nil
}

func (r *Repository) migrateLegacyItinerary(ctx context.Context, report *MigrationReport) error {
	blob, ok, err := r.store.Get(ctx, keyLegacyItinerary)
	if err != nil || !ok {
		return err
	}
	entries, skipped := codec.DecodeLegacyItinerary(blob)
	report.SkippedItinerary = skipped

	trips, err := r.ListTrips(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]string, len(trips))
	for _, t := range trips {
		if _, dup := byName[t.Name]; !dup {
			byName[t.Name] = t.ID
		}
	}

	grouped := make(map[string][]domain.EventItem)
	var order []string
	for _, e := range entries {
		tripID, ok := byName[e.TripName]
		if !ok {
			report.UnmatchedItinerary++
			continue
		}
		if _, seen := grouped[tripID]; !seen {
			order = append(order, tripID)
		}
		grouped[tripID] = append(grouped[tripID], e.Event)
	}

	for _, tripID := range order {
		n, err := r.appendMissingEvents(ctx, tripID, grouped[tripID])
		if err != nil {
			return err
		}
		report.Events += n
	}
	return nil
}

// appendMissingEvents adds the events whose IDs the partition does not hold yet.
func (r *Repository) appendMissingEvents(ctx context.Context, tripID string, events []domain.EventItem) (int, error) {
	c := r.events(tripID)
	unlock := r.locks.lock(c.key)
	defer unlock()

	stored, err := c.loadForWrite(ctx)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, e := range events {
		if indexOf(stored, e.ID) >= 0 {
			continue
		}
		if e.Category == "" {
			e.Category = domain.DefaultEventCategory
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = domain.Now()
		}
		stored = append(stored, e)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, c.write(ctx, stored)
}
