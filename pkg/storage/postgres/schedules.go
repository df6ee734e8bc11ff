package postgres

import (
	"context"
	"fmt"

	"curator/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	schedulesTable = "scheduled_items"
)

func (p *PgSQL) StoreSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error) {
	var row PgSchedule
	row.FromDomain(schedule)

	var result PgSchedule
	found, err := p.Builder.Insert(schedulesTable).
		Rows(row).
		Returning(&PgSchedule{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, translateError(err, "could not store schedule into pg")
	}
	if !found {
		return nil, fmt.Errorf("insert schedule returned no row")
	}

	return result.ToDomain(), nil
}

// ScheduleByID returns a binding by its ID, or nil when absent.
func (p *PgSQL) ScheduleByID(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error) {
	var row PgSchedule
	found, err := p.Builder.From(schedulesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch schedule by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TouchSchedule bumps updated_at and updated_by on a binding without changing
// its slot, returning the updated row or nil when the binding does not exist.
func (p *PgSQL) TouchSchedule(ctx context.Context,
	id domain.ScheduleID,
	updatedBy string) (*domain.Schedule, error) {
	var row PgSchedule
	found, err := p.Builder.Update(schedulesTable).
		Set(goqu.Record{
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_by": updatedBy,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgSchedule{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not touch schedule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteSchedule removes a binding permanently, returning the deleted row or
// nil when it was not found.
func (p *PgSQL) DeleteSchedule(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error) {
	var row PgSchedule
	found, err := p.Builder.Delete(schedulesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
		).Returning(&PgSchedule{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete schedule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SchedulesFor returns all live bindings for a (surface, date) pair. The sort
// order (updated_at, then created_at) is what same-day reorders manipulate.
func (p *PgSQL) SchedulesFor(ctx context.Context,
	surface domain.Surface,
	date domain.Date) ([]domain.Schedule, error) {
	var rows []PgSchedule
	err := p.Builder.From(schedulesTable).
		Where(
			goqu.I("surface_id").Eq(string(surface)),
			goqu.I("scheduled_date").Eq(date.String()),
		).
		Order(
			goqu.COALESCE(goqu.I("updated_at"), goqu.I("created_at")).Asc(),
			goqu.I("id").Asc(),
		).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch schedules from pg: %w", err)
	}

	return pgSchedulesToDomain(rows), nil
}
