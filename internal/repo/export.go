package repo

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// exportConcurrency bounds how many trips are read at once during Export.
const exportConcurrency = 4

// Export reads every trip together with all of its partitions. Trips keep
// their stored order. The snapshot is not taken under a global lock, so a
// write racing with Export may or may not be included.
func (r *Repository) Export(ctx context.Context) (domain.Snapshot, error) {
	trips, err := r.ListTrips(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.Repository.Export: %w", err)
	}

	out := make([]domain.TripExport, len(trips))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)
	for i, t := range trips {
		g.Go(func() error {
			te, err := r.exportTrip(gctx, t)
			if err != nil {
				return err
			}
			out[i] = te
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.Repository.Export: %w", err)
	}

	return domain.Snapshot{ExportedAt: domain.Now(), Trips: out}, nil
}

func (r *Repository) exportTrip(ctx context.Context, t domain.Trip) (domain.TripExport, error) {
	te := domain.TripExport{Trip: t}
	var err error
	if te.Places, err = r.ListPlaces(ctx, t.ID); err != nil {
		return te, err
	}
	if te.Events, err = r.ListEvents(ctx, t.ID); err != nil {
		return te, err
	}
	if te.Expenses, err = r.ListExpenses(ctx, t.ID); err != nil {
		return te, err
	}
	if te.Tasks, err = r.ListTasks(ctx, t.ID); err != nil {
		return te, err
	}
	if te.Budget, err = r.GetBudget(ctx, t.ID); err != nil {
		return te, err
	}
	item, err := r.GetBudgetItem(ctx, t.ID)
	switch {
	case err == nil:
		te.BudgetItem = &item
	case !errors.Is(err, domain.ErrNotFound):
		return te, err
	}
	return te, nil
}
