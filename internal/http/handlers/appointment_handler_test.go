package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rohithrjnr/go-appointment-backend/internal/domain"
	"github.com/rohithrjnr/go-appointment-backend/internal/services"
)

// ---- stub service ----

type stubApptSvc struct {
	slots func(ctx context.Context, date string) ([]string, error)
	book  func(ctx context.Context, name, phone, date, slot string) (*domain.Appointment, error)
	list  func(ctx context.Context) ([]domain.Appointment, error)
}

func (s stubApptSvc) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if s.slots != nil {
		return s.slots(ctx, date)
	}
	return nil, nil
}

func (s stubApptSvc) Book(ctx context.Context, name, phone, date, slot string) (*domain.Appointment, error) {
	if s.book != nil {
		return s.book(ctx, name, phone, date, slot)
	}
	return &domain.Appointment{ID: "id-1"}, nil
}

func (s stubApptSvc) List(ctx context.Context) ([]domain.Appointment, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func newTestRouter(svc AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc)
	r.GET("/api/slots", h.GetSlots)
	r.GET("/api/appointments", h.ListAppointments)
	r.POST("/api/book", h.BookAppointment)
	return r
}

// ---- GET /api/slots ----

func TestGetSlots_ReturnsSlots(t *testing.T) {
	var gotDate string
	r := newTestRouter(stubApptSvc{
		slots: func(_ context.Context, date string) ([]string, error) {
			gotDate = date
			return []string{"10:00", "10:30"}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-01-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotDate != "2025-01-01" {
		t.Fatalf("service received date %q", gotDate)
	}
	var body []string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 2 || body[0] != "10:00" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetSlots_MissingDate_PassedThroughEmpty(t *testing.T) {
	var gotDate = "sentinel"
	r := newTestRouter(stubApptSvc{
		slots: func(_ context.Context, date string) ([]string, error) {
			gotDate = date
			return []string{}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotDate != "" {
		t.Fatalf("service received date %q, want empty", gotDate)
	}
}

func TestGetSlots_StorageFailure_500(t *testing.T) {
	r := newTestRouter(stubApptSvc{
		slots: func(context.Context, string) ([]string, error) {
			return nil, errors.New("disk on fire")
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-01-01", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != ErrCodeSlotsFailed || resp.Message != "disk on fire" {
		t.Fatalf("resp = %+v", resp)
	}
}

// ---- GET /api/appointments ----

func TestListAppointments_ProjectsFields(t *testing.T) {
	r := newTestRouter(stubApptSvc{
		list: func(context.Context) ([]domain.Appointment, error) {
			return []domain.Appointment{
				{ID: "a1", Name: "John Doe", PhoneNumber: "1234567890", Date: "2025-01-01", Timeslot: "10:00"},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("len = %d, want 1", len(body))
	}
	got := body[0]
	if got["name"] != "John Doe" || got["phone_number"] != "1234567890" ||
		got["date"] != "2025-01-01" || got["timeslot"] != "10:00" {
		t.Fatalf("entry = %v", got)
	}
	// The listing projects booking fields only.
	if _, leaked := got["id"]; leaked {
		t.Fatalf("listing leaked internal id: %v", got)
	}
}

func TestListAppointments_Empty(t *testing.T) {
	r := newTestRouter(stubApptSvc{
		list: func(context.Context) ([]domain.Appointment, error) { return nil, nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// Empty ledger serializes as [], not null.
	if got := w.Body.String(); got != "[]" {
		t.Fatalf("body = %q, want []", got)
	}
}

func TestListAppointments_StorageFailure_500(t *testing.T) {
	r := newTestRouter(stubApptSvc{
		list: func(context.Context) ([]domain.Appointment, error) {
			return nil, errors.New("storage exploded")
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != ErrCodeListFailed || resp.Message != "storage exploded" {
		t.Fatalf("resp = %+v", resp)
	}
}

// ---- POST /api/book ----

func postBook(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBookAppointment_Success(t *testing.T) {
	var got [4]string
	r := newTestRouter(stubApptSvc{
		book: func(_ context.Context, name, phone, date, slot string) (*domain.Appointment, error) {
			got = [4]string{name, phone, date, slot}
			return &domain.Appointment{ID: "new-id", Name: name, PhoneNumber: phone, Date: date, Timeslot: slot}, nil
		},
	})

	w := postBook(r, `{"name":"John Doe","phone_number":"1234567890","date":"2025-01-01","timeslot":"10:00"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	if got != [4]string{"John Doe", "1234567890", "2025-01-01", "10:00"} {
		t.Fatalf("service received %v", got)
	}
	var resp BookAppointmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success != "Appointment booked successfully" || resp.ID != "new-id" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestBookAppointment_MissingFields_400(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"name":"John Doe"}`,
		`{"name":"John Doe","phone_number":"1234567890"}`,
		`{"name":"John Doe","phone_number":"1234567890","date":"2025-01-01"}`,
		`{"name":"","phone_number":"1234567890","date":"2025-01-01","timeslot":"10:00"}`,
		`not json`,
	}
	r := newTestRouter(stubApptSvc{
		book: func(context.Context, string, string, string, string) (*domain.Appointment, error) {
			t.Fatalf("service must not be called for invalid input")
			return nil, nil
		},
	})

	for _, body := range bodies {
		if w := postBook(r, body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestBookAppointment_BlankName_400(t *testing.T) {
	r := newTestRouter(stubApptSvc{
		book: func(context.Context, string, string, string, string) (*domain.Appointment, error) {
			t.Fatalf("service must not be called for blank name")
			return nil, nil
		},
	})

	// Whitespace passes the required binding but not the blank check.
	w := postBook(r, `{"name":"   ","phone_number":"1234567890","date":"2025-01-01","timeslot":"10:00"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBookAppointment_ServiceErrors(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{services.ErrUnknownSlot, http.StatusBadRequest, ErrCodeBadRequest, "timeslot is not a bookable slot"},
		{services.ErrInvalidDate, http.StatusBadRequest, ErrCodeBadRequest, "date must be YYYY-MM-DD"},
		{services.ErrSlotTaken, http.StatusConflict, ErrCodeConflict, "Time slot already booked"},
		{errors.New("boom"), http.StatusInternalServerError, ErrCodeBookFailed, "boom"},
	}

	for _, tc := range cases {
		r := newTestRouter(stubApptSvc{
			book: func(context.Context, string, string, string, string) (*domain.Appointment, error) {
				return nil, tc.err
			},
		})
		w := postBook(r, `{"name":"Alice","phone_number":"9876543210","date":"2025-01-01","timeslot":"12:00"}`)
		if w.Code != tc.wantStatus {
			t.Fatalf("%v: status = %d, want %d", tc.err, w.Code, tc.wantStatus)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: unmarshal: %v", tc.err, err)
		}
		if resp.Code != tc.wantCode || resp.Message != tc.wantMsg {
			t.Fatalf("%v: resp = %+v", tc.err, resp)
		}
	}
}
