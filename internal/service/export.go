package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
)

// ExportService assembles full exports of every trip and its records.
type ExportService struct {
	repo repo.ExportRepo
}

// NewExportService constructs an ExportService backed by the provided ExportRepo.
func NewExportService(r repo.ExportRepo) *ExportService {
	return &ExportService{repo: r}
}

// Snapshot returns the nested backup of all data.
func (s *ExportService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.repo.Export(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("service.ExportService.Snapshot: %w", err)
	}
	return snap, nil
}

// Rows returns one ExportRow per place, event, expense and task across all
// trips. Trips with no records contribute one row with empty child fields.
func (s *ExportService) Rows(ctx context.Context) ([]domain.ExportRow, error) {
	snap, err := s.repo.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Rows: %w", err)
	}
	return flatten(snap), nil
}

func flatten(snap domain.Snapshot) []domain.ExportRow {
	rows := []domain.ExportRow{}
	for _, te := range snap.Trips {
		base := domain.ExportRow{
			TripID:          te.Trip.ID,
			TripName:        te.Trip.Name,
			TripDestination: te.Trip.Destination,
			TripStartDate:   te.Trip.StartDate,
			TripEndDate:     te.Trip.EndDate,
		}
		before := len(rows)
		child := func(kind, id, title, day, amount string) {
			row := base
			row.Kind, row.ItemID, row.Title, row.Day, row.Amount = kind, id, title, day, amount
			rows = append(rows, row)
		}
		for _, p := range te.Places {
			child("place", p.ID, p.Name, p.Day, p.Cost.StringFixed(2))
		}
		for _, e := range te.Events {
			child("event", e.ID, e.Title, e.Date, "")
		}
		for _, e := range te.Expenses {
			child("expense", e.ID, e.Title, e.Date, e.Amount.StringFixed(2))
		}
		for _, t := range te.Tasks {
			child("task", t.ID, t.Title, t.DueDate, "")
		}
		if len(rows) == before {
			rows = append(rows, base)
		}
	}
	return rows
}

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{
	"trip_id", "trip_name", "trip_destination", "trip_start_date", "trip_end_date",
	"kind", "item_id", "title", "day", "amount",
}

// WriteCSV encodes rows as CSV, header first.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("service.WriteCSV: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.TripID, r.TripName, r.TripDestination, r.TripStartDate, r.TripEndDate,
			r.Kind, r.ItemID, r.Title, r.Day, r.Amount,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("service.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("service.WriteCSV: %w", err)
	}
	return nil
}
