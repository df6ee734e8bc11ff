package postgres

import (
	"context"
	"fmt"

	"curator/pkg/domain"
)

const (
	reviewsTable = "schedule_reviews"
)

func (p *PgSQL) StoreReviewMark(ctx context.Context, mark domain.ReviewMark) (*domain.ReviewMark, error) {
	row := PgReviewMark{
		SurfaceID:     string(mark.Surface),
		ScheduledDate: mark.Date.Time(),
		ReviewedBy:    mark.ReviewedBy,
	}

	var result PgReviewMark
	found, err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Returning(&PgReviewMark{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, translateError(err, "could not store review mark into pg")
	}
	if !found {
		return nil, fmt.Errorf("insert review mark returned no row")
	}

	return result.ToDomain(), nil
}
