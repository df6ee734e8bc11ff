package v1handler

import (
	"net/http"

	"curator/internal/curation"
	"curator/pkg/domain"
	"curator/pkg/serrors"

	"github.com/google/uuid"
)

type createContentItemRequest struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	CreatedBy string `json:"createdBy"`
}

func (h *Handler) createContentItem(w http.ResponseWriter, r *http.Request) {
	var req createContentItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	item, err := h.curator.CreateContentItem(r.Context(), curation.CreateContentItemInput{
		URL:       req.URL,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Publisher: req.Publisher,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, item)
}

type scheduleRequest struct {
	ContentItemID string `json:"contentItemId"`
	Surface       string `json:"surface"`
	Date          string `json:"date"`
	Method        string `json:"method"`
	CreatedBy     string `json:"createdBy"`
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	itemID, err := uuid.Parse(req.ContentItemID)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid content item id"))

		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date"))

		return
	}

	schedule, err := h.curator.Schedule(r.Context(), curation.ScheduleInput{
		ContentItemID: domain.ContentItemID(itemID),
		Surface:       domain.Surface(req.Surface),
		Date:          date,
		Method:        domain.ScheduleMethod(req.Method),
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, schedule)
}

type unscheduleRequest struct {
	Reasons   []string `json:"reasons,omitempty"`
	Comment   string   `json:"comment,omitempty"`
	RemovedBy string   `json:"removedBy"`
}

func (h *Handler) unschedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid schedule id"))

		return
	}

	// removal context body is optional
	var req unscheduleRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			writeError(w, r, err)

			return
		}
	}

	deleted, err := h.curator.Unschedule(r.Context(), curation.UnscheduleInput{
		ID:        domain.ScheduleID(id),
		Reasons:   req.Reasons,
		Comment:   req.Comment,
		RemovedBy: req.RemovedBy,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, deleted)
}

type rescheduleRequest struct {
	NewDate   string `json:"newDate"`
	Method    string `json:"method"`
	UpdatedBy string `json:"updatedBy"`
}

func (h *Handler) reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid schedule id"))

		return
	}

	var req rescheduleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	newDate, err := domain.ParseDate(req.NewDate)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date"))

		return
	}

	schedule, err := h.curator.Reschedule(r.Context(), curation.RescheduleInput{
		ID:        domain.ScheduleID(id),
		NewDate:   newDate,
		Method:    domain.ScheduleMethod(req.Method),
		UpdatedBy: req.UpdatedBy,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, schedule)
}

type markReviewedRequest struct {
	Surface    string `json:"surface"`
	Date       string `json:"date"`
	ReviewedBy string `json:"reviewedBy"`
}

func (h *Handler) markReviewed(w http.ResponseWriter, r *http.Request) {
	var req markReviewedRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date"))

		return
	}

	mark, err := h.curator.MarkReviewed(r.Context(), curation.MarkReviewedInput{
		Surface:    domain.Surface(req.Surface),
		Date:       date,
		ReviewedBy: req.ReviewedBy,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, mark)
}

func (h *Handler) listSchedule(w http.ResponseWriter, r *http.Request) {
	surface := r.URL.Query().Get("surface")
	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date"))

		return
	}

	schedules, err := h.curator.ScheduleFor(r.Context(), domain.Surface(surface), date)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, struct {
		Schedules []domain.Schedule `json:"schedules"`
	}{Schedules: schedules})
}

func (h *Handler) listSurfaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, struct {
		Surfaces []domain.Surface `json:"surfaces"`
	}{Surfaces: curation.Surfaces()})
}
