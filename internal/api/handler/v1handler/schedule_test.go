package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"curator/internal/curation"
	"curator/pkg/domain"
	"curator/pkg/serrors"
)

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestCreateContentItem(t *testing.T) {
	curator, mux := newTestHandler(t)

	itemID := domain.ContentItemID(uuid.New())
	curator.EXPECT().CreateContentItem(gomock.Any(), curation.CreateContentItemInput{
		URL:       "https://example.com/article",
		Title:     "A headline",
		CreatedBy: "curator@example.com",
	}).Return(&domain.ContentItem{
		ID:         itemID,
		URL:        "https://example.com/article",
		DomainName: "example.com",
		Title:      "A headline",
	}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/v1/content-items",
		`{"url":"https://example.com/article","title":"A headline","createdBy":"curator@example.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.ContentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, itemID, got.ID)
	require.Equal(t, "example.com", got.DomainName)
}

func TestCreateContentItem_MalformedBody(t *testing.T) {
	_, mux := newTestHandler(t)

	rec := doJSON(t, mux, http.MethodPost, "/v1/content-items", `{"url": nope}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateContentItem_EngineErrorsMapped(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "title is required"), http.StatusBadRequest},
		{"conflict", serrors.With(serrors.ErrConflict, "already exists"), http.StatusConflict},
		{"internal", serrors.With(serrors.ErrInternal, "boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			curator, mux := newTestHandler(t)
			curator.EXPECT().CreateContentItem(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := doJSON(t, mux, http.MethodPost, "/v1/content-items",
				`{"url":"https://example.com/a","title":"t","createdBy":"c"}`)
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestSchedule(t *testing.T) {
	curator, mux := newTestHandler(t)

	itemID := uuid.New()
	scheduleID := domain.ScheduleID(uuid.New())
	curator.EXPECT().Schedule(gomock.Any(), curation.ScheduleInput{
		ContentItemID: domain.ContentItemID(itemID),
		Surface:       "NEW_TAB_EN_US",
		Date:          "2026-09-01",
		Method:        domain.ScheduleMethodManual,
		CreatedBy:     "curator@example.com",
	}).Return(&domain.Schedule{
		ID:      scheduleID,
		Surface: "NEW_TAB_EN_US",
		Date:    "2026-09-01",
		Method:  domain.ScheduleMethodManual,
	}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/v1/schedule",
		`{"contentItemId":"`+itemID.String()+
			`","surface":"NEW_TAB_EN_US","date":"2026-09-01","method":"MANUAL","createdBy":"curator@example.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Schedule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, scheduleID, got.ID)
}

func TestSchedule_InvalidInput(t *testing.T) {
	_, mux := newTestHandler(t)

	// bad content item id
	rec := doJSON(t, mux, http.MethodPost, "/v1/schedule",
		`{"contentItemId":"not-a-uuid","surface":"NEW_TAB_EN_US","date":"2026-09-01","method":"MANUAL"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// bad date
	rec = doJSON(t, mux, http.MethodPost, "/v1/schedule",
		`{"contentItemId":"`+uuid.NewString()+`","surface":"NEW_TAB_EN_US","date":"09/01/2026","method":"MANUAL"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSchedule_Conflict(t *testing.T) {
	curator, mux := newTestHandler(t)

	curator.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict,
			"content item is already scheduled for NEW_TAB_EN_US on 2026-09-01"))

	rec := doJSON(t, mux, http.MethodPost, "/v1/schedule",
		`{"contentItemId":"`+uuid.NewString()+`","surface":"NEW_TAB_EN_US","date":"2026-09-01","method":"MANUAL"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Error, "already scheduled")
}

func TestUnschedule(t *testing.T) {
	curator, mux := newTestHandler(t)

	scheduleID := uuid.New()
	curator.EXPECT().Unschedule(gomock.Any(), curation.UnscheduleInput{
		ID:        domain.ScheduleID(scheduleID),
		Reasons:   []string{"PAYWALL"},
		Comment:   "behind a paywall",
		RemovedBy: "curator@example.com",
	}).Return(&domain.Schedule{ID: domain.ScheduleID(scheduleID)}, nil)

	rec := doJSON(t, mux, http.MethodDelete, "/v1/schedule/"+scheduleID.String(),
		`{"reasons":["PAYWALL"],"comment":"behind a paywall","removedBy":"curator@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnschedule_BodyOptional(t *testing.T) {
	curator, mux := newTestHandler(t)

	scheduleID := uuid.New()
	curator.EXPECT().Unschedule(gomock.Any(), curation.UnscheduleInput{
		ID: domain.ScheduleID(scheduleID),
	}).Return(&domain.Schedule{ID: domain.ScheduleID(scheduleID)}, nil)

	rec := doJSON(t, mux, http.MethodDelete, "/v1/schedule/"+scheduleID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnschedule_NotFound(t *testing.T) {
	curator, mux := newTestHandler(t)

	curator.EXPECT().Unschedule(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "schedule not found"))

	rec := doJSON(t, mux, http.MethodDelete, "/v1/schedule/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnschedule_InvalidID(t *testing.T) {
	_, mux := newTestHandler(t)

	rec := doJSON(t, mux, http.MethodDelete, "/v1/schedule/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReschedule(t *testing.T) {
	curator, mux := newTestHandler(t)

	oldID := uuid.New()
	newID := domain.ScheduleID(uuid.New())
	curator.EXPECT().Reschedule(gomock.Any(), curation.RescheduleInput{
		ID:        domain.ScheduleID(oldID),
		NewDate:   "2026-09-02",
		Method:    domain.ScheduleMethodManual,
		UpdatedBy: "curator@example.com",
	}).Return(&domain.Schedule{ID: newID, Date: "2026-09-02"}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/v1/schedule/"+oldID.String()+"/reschedule",
		`{"newDate":"2026-09-02","method":"MANUAL","updatedBy":"curator@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Schedule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, newID, got.ID)
}

func TestMarkReviewed(t *testing.T) {
	curator, mux := newTestHandler(t)

	curator.EXPECT().MarkReviewed(gomock.Any(), curation.MarkReviewedInput{
		Surface:    "NEW_TAB_EN_US",
		Date:       "2026-09-01",
		ReviewedBy: "curator@example.com",
	}).Return(&domain.ReviewMark{
		Surface: "NEW_TAB_EN_US",
		Date:    "2026-09-01",
	}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/v1/schedule/reviews",
		`{"surface":"NEW_TAB_EN_US","date":"2026-09-01","reviewedBy":"curator@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate review is a conflict
	curator.EXPECT().MarkReviewed(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "already been reviewed"))

	rec = doJSON(t, mux, http.MethodPost, "/v1/schedule/reviews",
		`{"surface":"NEW_TAB_EN_US","date":"2026-09-01","reviewedBy":"curator@example.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestListSchedule(t *testing.T) {
	curator, mux := newTestHandler(t)

	curator.EXPECT().ScheduleFor(gomock.Any(), domain.Surface("NEW_TAB_EN_US"), domain.Date("2026-09-01")).
		Return([]domain.Schedule{
			{Surface: "NEW_TAB_EN_US", Date: "2026-09-01"},
			{Surface: "NEW_TAB_EN_US", Date: "2026-09-01"},
		}, nil)

	rec := doJSON(t, mux, http.MethodGet, "/v1/schedule?surface=NEW_TAB_EN_US&date=2026-09-01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Schedules []domain.Schedule `json:"schedules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Schedules, 2)
}

func TestListSchedule_InvalidDate(t *testing.T) {
	_, mux := newTestHandler(t)

	rec := doJSON(t, mux, http.MethodGet, "/v1/schedule?surface=NEW_TAB_EN_US&date=tomorrow", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSurfaces(t *testing.T) {
	_, mux := newTestHandler(t)

	rec := doJSON(t, mux, http.MethodGet, "/v1/surfaces", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Surfaces []domain.Surface `json:"surfaces"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Surfaces)
	require.Contains(t, body.Surfaces, domain.Surface("NEW_TAB_EN_US"))
}
