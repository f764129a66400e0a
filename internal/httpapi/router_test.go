package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	calendarpb "github.com/Leganyst/session-scheduler/internal/api/calendar/v1"
	"github.com/Leganyst/session-scheduler/internal/logging"
	"github.com/Leganyst/session-scheduler/internal/notification"
	"github.com/Leganyst/session-scheduler/internal/repository"
	"github.com/Leganyst/session-scheduler/internal/scheduling"
	"github.com/Leganyst/session-scheduler/internal/service"
	"github.com/Leganyst/session-scheduler/internal/testutil"
)

type apiFixture struct {
	router   *gin.Engine
	notifier *testutil.Notifier
}

func setupRouter(t *testing.T, opts RouterOptions) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	notifier := &testutil.Notifier{}
	clock := testutil.NewClock(time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC))
	engine := scheduling.NewEngine(scheduling.Options{
		Store:    repository.NewStore(testutil.NewDB(t)),
		Notifier: notifier,
		Logger:   logging.Discard(),
		Now:      clock.Now,
	})

	opts.Logger = logging.Discard()
	return &apiFixture{
		router:   NewRouter(service.NewCalendarService(engine), opts),
		notifier: notifier,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case proto.Message:
		raw, err := protojson.Marshal(b)
		require.NoError(t, err)
		buf.Write(raw)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// decodePB разбирает protojson-ответ в сообщение calendar.v1.
func decodePB[T any, PT interface {
	*T
	proto.Message
}](t *testing.T, w *httptest.ResponseRecorder) PT {
	t.Helper()
	msg := PT(new(T))
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), msg), w.Body.String())
	return msg
}

type errorBody struct {
	Error  string            `json:"error"`
	Kind   string            `json:"kind"`
	Fields map[string]string `json:"fields"`
}

func (f *apiFixture) createSeries(t *testing.T, capacity int32) *calendarpb.CreateSeriesResponse {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/series", &calendarpb.CreateSeriesRequest{
		DayOfWeek:    int32(time.Tuesday),
		StartTime:    "18:00",
		EndTime:      "19:00",
		StartDate:    "2025-01-07",
		EndDate:      "2025-01-28",
		Capacity:     capacity,
		InstructorId: uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodePB[calendarpb.CreateSeriesResponse](t, w)
}

func TestRouter_BookingFlow(t *testing.T) {
	f := setupRouter(t, RouterOptions{})
	series := f.createSeries(t, 1)
	require.Len(t, series.Instances, 4)
	instance := series.Instances[0].Id

	alice, bob := uuid.NewString(), uuid.NewString()

	w := f.do(t, http.MethodPost, "/api/v1/instances/"+instance+"/enrollments", gin.H{"client_id": alice})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/v1/instances/"+instance+"/enrollments", gin.H{"client_id": bob})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, scheduling.KindCapacityExceeded, decode[errorBody](t, w).Kind)

	w = f.do(t, http.MethodPost, "/api/v1/instances/"+instance+"/waitlist", gin.H{"client_id": bob})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodDelete, "/api/v1/instances/"+instance+"/enrollments/"+alice, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cancelled := decodePB[calendarpb.CancelInstanceResponse](t, w)
	require.Len(t, cancelled.Promoted, 1)
	assert.Equal(t, bob, cancelled.Promoted[0].ClientId)

	w = f.do(t, http.MethodDelete, "/api/v1/instances/"+instance+"/enrollments/"+alice, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, scheduling.KindNotEnrolled, decode[errorBody](t, w).Kind)
}

func TestRouter_ValidationAndNotFound(t *testing.T) {
	f := setupRouter(t, RouterOptions{})

	w := f.do(t, http.MethodPost, "/api/v1/instances/not-a-uuid/enrollments", gin.H{"client_id": uuid.NewString()})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, scheduling.KindValidation, body.Kind)
	assert.Contains(t, body.Fields, "instance_id")

	w = f.do(t, http.MethodPost, "/api/v1/instances/"+uuid.NewString()+"/enrollments", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/instances/"+uuid.NewString()+"/enrollments", gin.H{"client_id": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/staff/"+uuid.NewString()+"/free-slots?date=2025-01-13&duration=60", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UpdateAndDeleteInstance(t *testing.T) {
	f := setupRouter(t, RouterOptions{})
	series := f.createSeries(t, 3)
	second := series.Instances[1].Id

	w := f.do(t, http.MethodPatch, "/api/v1/instances/"+second+"?cascade=true", gin.H{"start_time": "19:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodePB[calendarpb.UpdateSeriesResponse](t, w)
	require.Len(t, updated.Updated, 3)
	for _, inst := range updated.Updated {
		assert.Equal(t, "19:00", inst.StartTime)
		assert.False(t, inst.IsOverridden)
	}

	w = f.do(t, http.MethodGet, "/api/v1/series/"+series.Series.Id+"/instances?page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodePB[calendarpb.ListInstancesResponse](t, w)
	require.Len(t, list.Instances, 4)
	assert.Equal(t, "18:00", list.Instances[0].StartTime)

	w = f.do(t, http.MethodDelete, "/api/v1/instances/"+second+"?cascade=true", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decodePB[calendarpb.DeleteSeriesResponse](t, w).DeletedInstanceIds, 3)
}

func TestRouter_GuestRescheduleTokenGone(t *testing.T) {
	f := setupRouter(t, RouterOptions{})
	series := f.createSeries(t, 3)

	w := f.do(t, http.MethodPost, "/api/v1/guest-signups", &calendarpb.CreateGuestSignupRequest{
		InstanceId: series.Instances[0].Id,
		GuestName:  "Guest",
		GuestEmail: "guest@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	signup := decodePB[calendarpb.CreateGuestSignupResponse](t, w)

	w = f.do(t, http.MethodPost, "/api/v1/guest-signups/"+signup.Signup.Id+"/reschedule",
		gin.H{"proposed_instance_id": series.Instances[2].Id})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := decodePB[calendarpb.ProposeGuestRescheduleResponse](t, w).Token

	msgs := f.notifier.ByTemplate(notification.TemplateGuestRescheduleProposed)
	require.Len(t, msgs, 1)
	assert.Equal(t, msgs[0].Payload["token"], token)

	w = f.do(t, http.MethodPost, "/api/v1/reschedule/confirm", gin.H{"token": token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/v1/reschedule/confirm", gin.H{"token": token})
	assert.Equal(t, http.StatusGone, w.Code)
	assert.Equal(t, scheduling.KindTokenAlreadyUsed, decode[errorBody](t, w).Kind)

	w = f.do(t, http.MethodPost, "/api/v1/reschedule/confirm", gin.H{"token": "unknown"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_StandaloneInstanceAndWaitlist(t *testing.T) {
	f := setupRouter(t, RouterOptions{})

	w := f.do(t, http.MethodPost, "/api/v1/instances", &calendarpb.CreateInstanceRequest{
		Date:            "2025-01-10",
		StartTime:       "12:00",
		DurationMinutes: 45,
		Capacity:        1,
		InstructorId:    uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodePB[calendarpb.CreateInstanceResponse](t, w).Instance
	assert.Empty(t, created.SeriesId)
	assert.False(t, created.IsGenerated)

	alice, bob := uuid.NewString(), uuid.NewString()
	w = f.do(t, http.MethodPost, "/api/v1/instances/"+created.Id+"/enrollments", gin.H{"client_id": alice})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = f.do(t, http.MethodPost, "/api/v1/instances/"+created.Id+"/waitlist", gin.H{"client_id": bob})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/v1/instances/"+created.Id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodePB[calendarpb.GetInstanceResponse](t, w).Instance
	assert.EqualValues(t, 1, got.ParticipantCount)
	assert.Equal(t, "12:00", got.StartTime)

	w = f.do(t, http.MethodGet, "/api/v1/instances/"+created.Id+"/waitlist", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	entries := decodePB[calendarpb.ListWaitlistResponse](t, w).Entries
	require.Len(t, entries, 1)
	assert.Equal(t, bob, entries[0].ClientId)

	w = f.do(t, http.MethodGet, "/api/v1/clients/"+alice+"/enrollments?from=2025-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	enrollments := decodePB[calendarpb.ListClientEnrollmentsResponse](t, w).Enrollments
	require.Len(t, enrollments, 1)
	assert.Equal(t, created.Id, enrollments[0].InstanceId)

	w = f.do(t, http.MethodGet, "/api/v1/instances/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AppointmentFlow(t *testing.T) {
	f := setupRouter(t, RouterOptions{})

	w := f.do(t, http.MethodPost, "/api/v1/staff", &calendarpb.CreateProviderRequest{
		DisplayName: "Dr. Smith",
		WorkingHours: []*calendarpb.WorkingHours{
			{DayOfWeek: int32(time.Monday), StartTime: "09:00", EndTime: "12:00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	provider := decodePB[calendarpb.CreateProviderResponse](t, w).Provider
	require.Len(t, provider.WorkingHours, 1)

	w = f.do(t, http.MethodPost, "/api/v1/staff/"+provider.Id+"/working-hours",
		&calendarpb.WorkingHours{DayOfWeek: int32(time.Monday), StartTime: "11:00", EndTime: "13:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Fields, "working_hours")

	w = f.do(t, http.MethodPost, "/api/v1/staff/"+provider.Id+"/working-hours",
		&calendarpb.WorkingHours{DayOfWeek: int32(time.Monday), StartTime: "14:00", EndTime: "15:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decodePB[calendarpb.AddWorkingHoursResponse](t, w).Provider.WorkingHours, 2)

	client := uuid.NewString()
	w = f.do(t, http.MethodPost, "/api/v1/staff/"+provider.Id+"/appointments", &calendarpb.RequestAppointmentRequest{
		ClientId:        client,
		Date:            "2025-01-13",
		StartTime:       "09:00",
		DurationMinutes: 60,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appointment := decodePB[calendarpb.RequestAppointmentResponse](t, w).Appointment
	assert.Equal(t, "requested", appointment.Status)

	w = f.do(t, http.MethodPost, "/api/v1/staff/"+provider.Id+"/appointments", &calendarpb.RequestAppointmentRequest{
		ClientId:        uuid.NewString(),
		Date:            "2025-01-13",
		StartTime:       "09:30",
		DurationMinutes: 60,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, scheduling.KindSlotUnavailable, decode[errorBody](t, w).Kind)

	w = f.do(t, http.MethodGet, "/api/v1/staff/"+provider.Id+"/free-slots?date=2025-01-13&duration=60", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	slots := decodePB[calendarpb.GetFreeSlotsResponse](t, w).Slots
	assert.NotContains(t, slots, "09:00")
	assert.Contains(t, slots, "10:00")

	w = f.do(t, http.MethodPost, "/api/v1/appointments/"+appointment.Id+"/accept", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "confirmed", decodePB[calendarpb.AcceptAppointmentResponse](t, w).Appointment.Status)

	w = f.do(t, http.MethodDelete, "/api/v1/appointments/"+appointment.Id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/staff/"+provider.Id+"/free-slots?date=2025-01-13&duration=60", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, decodePB[calendarpb.GetFreeSlotsResponse](t, w).Slots, "09:00")
}

func TestRouter_RateLimited(t *testing.T) {
	f := setupRouter(t, RouterOptions{RateLimitPerSec: 0.001, RateLimitBurst: 1})

	path := "/api/v1/series/" + uuid.NewString() + "/instances"
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(t, http.MethodGet, path, nil).Code)

	// health не под лимитом
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/healthz", nil).Code)
}
