package book_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-DentalCareService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

type fakeUseCase struct {
	resp *bookAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func validBody() BookAppointmentRequest {
	return BookAppointmentRequest{
		PatientName:  "John Doe",
		Email:        "john.doe@example.com",
		ServiceQuery: "whitening",
		Doctor:       "Adam",
		Date:         "1/28/2025",
		Time:         "3:30 PM",
	}
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &bookAppointment.Response{
		BookingRecord: domain.BookingRecord{
			Doctor:       "Adam",
			Date:         time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
			Time:         types.ClockTime("15:30:00"),
			PatientName:  "John Doe",
			Email:        "john.doe@example.com",
			ServiceName:  "Teeth Whitening",
			ServicePrice: 1500,
			CreatedAt:    time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC),
		},
		NotificationDelivered: true,
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Adam", resp.Doctor)
	assert.Equal(t, "1/28/2025", resp.Date)
	assert.Equal(t, "3:30 PM", resp.Time)
	assert.Equal(t, "Teeth Whitening", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
	assert.True(t, resp.NotificationDelivered)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{err: &bookAppointment.ValidationError{
		Field:   "email",
		Message: "invalid email format",
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Field)
	assert.Equal(t, "invalid email format", resp.Message)
}

func TestHandler_Handle_ServiceUnmatched(t *testing.T) {
	uc := &fakeUseCase{err: &bookAppointment.ServiceUnmatchedError{
		Query: "whitning",
		Suggestions: []domain.DentalService{
			{Name: "Teeth Whitening", PriceUAH: 1500},
			{Name: "Tooth Filling", PriceUAH: 800},
		},
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp SuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Teeth Whitening", "Tooth Filling"}, resp.Suggestions)
}

func TestHandler_Handle_SlotAlreadyBooked(t *testing.T) {
	uc := &fakeUseCase{err: bookAppointment.ErrSlotAlreadyBooked}

	rec := doRequest(t, uc, validBody())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Handle_SlotUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: &bookAppointment.SlotUnavailableError{
		Doctor:    "Adam",
		Date:      time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
		FreeSlots: []types.ClockTime{"09:00:00", "15:30:00"},
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp UnavailableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"9:00 AM", "3:30 PM"}, resp.AvailableSlots)
}

func TestHandler_Handle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}

	rec := doRequest(t, uc, validBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
