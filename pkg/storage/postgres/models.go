package postgres

import (
	"database/sql"
	"time"

	"curator/pkg/domain"

	"github.com/google/uuid"
)

type PgContentItem struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	URL        string `db:"url"`
	DomainName string `db:"domain_name"`

	Title     string         `db:"title"`
	Excerpt   sql.NullString `db:"excerpt"`
	Publisher sql.NullString `db:"publisher"`

	CreatedBy string         `db:"created_by"`
	UpdatedBy sql.NullString `db:"updated_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgContentItem) ToDomain() *domain.ContentItem {
	return &domain.ContentItem{
		ID:         domain.ContentItemID(p.ID),
		URL:        p.URL,
		DomainName: p.DomainName,
		Title:      p.Title,
		Excerpt:    p.Excerpt.String,
		Publisher:  p.Publisher.String,
		CreatedBy:  p.CreatedBy,
		UpdatedBy:  p.UpdatedBy.String,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgContentItem) FromDomain(item domain.ContentItem) {
	*p = PgContentItem{
		ID:         uuid.UUID(item.ID),
		URL:        item.URL,
		DomainName: item.DomainName,
		Title:      item.Title,
		Excerpt:    sql.NullString{String: item.Excerpt, Valid: item.Excerpt != ""},
		Publisher:  sql.NullString{String: item.Publisher, Valid: item.Publisher != ""},
		CreatedBy:  item.CreatedBy,
		UpdatedBy:  sql.NullString{String: item.UpdatedBy, Valid: item.UpdatedBy != ""},
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  sql.NullTime{Time: item.UpdatedAt, Valid: !item.UpdatedAt.IsZero()},
	}
}

type PgDomain struct {
	Name    string `db:"domain_name"`
	Trusted bool   `db:"trusted"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	return &domain.Domain{
		Name:      p.Name,
		Trusted:   p.Trusted,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

type PgSchedule struct {
	ID            uuid.UUID `db:"id" goqu:"skipinsert"`
	ContentItemID uuid.UUID `db:"content_item_id"`

	SurfaceID     string    `db:"surface_id"`
	ScheduledDate time.Time `db:"scheduled_date"`
	Method        string    `db:"created_method"`

	CreatedBy string         `db:"created_by"`
	UpdatedBy sql.NullString `db:"updated_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSchedule) ToDomain() *domain.Schedule {
	return &domain.Schedule{
		ID:            domain.ScheduleID(p.ID),
		ContentItemID: domain.ContentItemID(p.ContentItemID),
		Surface:       domain.Surface(p.SurfaceID),
		Date:          domain.DateOf(p.ScheduledDate),
		Method:        domain.ScheduleMethod(p.Method),
		CreatedBy:     p.CreatedBy,
		UpdatedBy:     p.UpdatedBy.String,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgSchedule) FromDomain(schedule domain.Schedule) {
	*p = PgSchedule{
		ID:            uuid.UUID(schedule.ID),
		ContentItemID: uuid.UUID(schedule.ContentItemID),
		SurfaceID:     string(schedule.Surface),
		ScheduledDate: schedule.Date.Time(),
		Method:        string(schedule.Method),
		CreatedBy:     schedule.CreatedBy,
		UpdatedBy:     sql.NullString{String: schedule.UpdatedBy, Valid: schedule.UpdatedBy != ""},
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     sql.NullTime{Time: schedule.UpdatedAt, Valid: !schedule.UpdatedAt.IsZero()},
	}
}

func pgSchedulesToDomain(schedules []PgSchedule) []domain.Schedule {
	out := make([]domain.Schedule, 0, len(schedules))
	for i := range schedules {
		out = append(out, *schedules[i].ToDomain())
	}

	return out
}

type PgReviewMark struct {
	SurfaceID     string    `db:"surface_id"`
	ScheduledDate time.Time `db:"scheduled_date"`

	ReviewedBy string    `db:"reviewed_by"`
	ReviewedAt time.Time `db:"reviewed_at" goqu:"skipinsert"`
}

func (p *PgReviewMark) ToDomain() *domain.ReviewMark {
	return &domain.ReviewMark{
		Surface:    domain.Surface(p.SurfaceID),
		Date:       domain.DateOf(p.ScheduledDate),
		ReviewedBy: p.ReviewedBy,
		ReviewedAt: p.ReviewedAt,
	}
}
