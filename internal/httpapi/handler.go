package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	calendarpb "github.com/Leganyst/session-scheduler/internal/api/calendar/v1"
)

// Handler переводит HTTP-запросы в вызовы CalendarService. Разбор
// идентификаторов и дат остаётся на стороне сервиса.
type Handler struct {
	calendar calendarpb.CalendarServiceServer
}

func NewHandler(calendar calendarpb.CalendarServiceServer) *Handler {
	return &Handler{calendar: calendar}
}

type clientBody struct {
	ClientID string `json:"client_id" binding:"required"`
}

type cascadeQuery struct {
	Cascade       bool   `form:"cascade"`
	ReferenceDate string `form:"reference_date"`
}

func (h *Handler) CreateSeries(c *gin.Context) {
	var req calendarpb.CreateSeriesRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.CreateSeries(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) DeleteSeries(c *gin.Context) {
	resp, err := h.calendar.DeleteSeries(c.Request.Context(), &calendarpb.DeleteSeriesRequest{
		SeriesId: c.Param("series_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) ListInstances(c *gin.Context) {
	var q struct {
		From     string `form:"from"`
		To       string `form:"to"`
		Page     int32  `form:"page"`
		PageSize int32  `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.ListInstances(c.Request.Context(), &calendarpb.ListInstancesRequest{
		SeriesId: c.Param("series_id"),
		From:     q.From,
		To:       q.To,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var body struct {
		ClientID string `json:"client_id" binding:"required"`
		EndDate  string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.SubscribeToSeries(c.Request.Context(), &calendarpb.SubscribeToSeriesRequest{
		SeriesId: c.Param("series_id"),
		ClientId: body.ClientID,
		EndDate:  body.EndDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	_, err := h.calendar.Unsubscribe(c.Request.Context(), &calendarpb.UnsubscribeRequest{
		SeriesId: c.Param("series_id"),
		ClientId: c.Param("client_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateInstance: PATCH с полями патча в теле и ?cascade=true.
func (h *Handler) UpdateInstance(c *gin.Context) {
	var q cascadeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	var req calendarpb.UpdateSeriesRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	req.InstanceId = c.Param("instance_id")
	req.Cascade = q.Cascade

	resp, err := h.calendar.UpdateSeries(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) DeleteInstance(c *gin.Context) {
	var q cascadeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.DeleteSeries(c.Request.Context(), &calendarpb.DeleteSeriesRequest{
		InstanceId: c.Param("instance_id"),
		Cascade:    q.Cascade,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) Book(c *gin.Context) {
	var body clientBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.BookInstance(c.Request.Context(), &calendarpb.BookInstanceRequest{
		InstanceId: c.Param("instance_id"),
		ClientId:   body.ClientID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) Cancel(c *gin.Context) {
	var q cascadeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.CancelInstance(c.Request.Context(), &calendarpb.CancelInstanceRequest{
		InstanceId:    c.Param("instance_id"),
		ClientId:      c.Param("client_id"),
		Cascade:       q.Cascade,
		ReferenceDate: q.ReferenceDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) JoinWaitlist(c *gin.Context) {
	var body clientBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.JoinWaitlist(c.Request.Context(), &calendarpb.JoinWaitlistRequest{
		InstanceId: c.Param("instance_id"),
		ClientId:   body.ClientID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) LeaveWaitlist(c *gin.Context) {
	_, err := h.calendar.LeaveWaitlist(c.Request.Context(), &calendarpb.LeaveWaitlistRequest{
		InstanceId: c.Param("instance_id"),
		ClientId:   c.Param("client_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ExpireWaitlistEntry(c *gin.Context) {
	resp, err := h.calendar.ExpireWaitlistEntry(c.Request.Context(), &calendarpb.ExpireWaitlistEntryRequest{
		EntryId: c.Param("entry_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

// FreeSlots: GET /staff/:staff_id/free-slots?date=2025-01-13&duration=60
func (h *Handler) FreeSlots(c *gin.Context) {
	var q struct {
		Date     string `form:"date" binding:"required"`
		Duration int32  `form:"duration" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.GetFreeSlots(c.Request.Context(), &calendarpb.GetFreeSlotsRequest{
		StaffId:         c.Param("staff_id"),
		Date:            q.Date,
		DurationMinutes: q.Duration,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) CreateGuestSignup(c *gin.Context) {
	var req calendarpb.CreateGuestSignupRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.CreateGuestSignup(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) ProposeReschedule(c *gin.Context) {
	var body struct {
		ProposedInstanceID string `json:"proposed_instance_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.ProposeGuestReschedule(c.Request.Context(), &calendarpb.ProposeGuestRescheduleRequest{
		SignupId:           c.Param("signup_id"),
		ProposedInstanceId: body.ProposedInstanceID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) ConfirmReschedule(c *gin.Context) {
	var req calendarpb.ConfirmGuestRescheduleRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.ConfirmGuestReschedule(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) CreateInstance(c *gin.Context) {
	var req calendarpb.CreateInstanceRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.CreateInstance(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) GetInstance(c *gin.Context) {
	resp, err := h.calendar.GetInstance(c.Request.Context(), &calendarpb.GetInstanceRequest{
		InstanceId: c.Param("instance_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) ListWaitlist(c *gin.Context) {
	resp, err := h.calendar.ListWaitlist(c.Request.Context(), &calendarpb.ListWaitlistRequest{
		InstanceId: c.Param("instance_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

// ClientEnrollments: GET /clients/:client_id/enrollments?from=2025-01-01
func (h *Handler) ClientEnrollments(c *gin.Context) {
	resp, err := h.calendar.ListClientEnrollments(c.Request.Context(), &calendarpb.ListClientEnrollmentsRequest{
		ClientId: c.Param("client_id"),
		From:     c.Query("from"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) CreateProvider(c *gin.Context) {
	var req calendarpb.CreateProviderRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.CreateProvider(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

// AddWorkingHours: тело запроса: сам интервал {day_of_week, start_time, end_time}.
func (h *Handler) AddWorkingHours(c *gin.Context) {
	var wh calendarpb.WorkingHours
	if err := bindProto(c, &wh); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.calendar.AddWorkingHours(c.Request.Context(), &calendarpb.AddWorkingHoursRequest{
		ProviderId:   c.Param("staff_id"),
		WorkingHours: &wh,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) RequestAppointment(c *gin.Context) {
	var req calendarpb.RequestAppointmentRequest
	if err := bindProto(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	req.ProviderId = c.Param("staff_id")
	resp, err := h.calendar.RequestAppointment(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusCreated, resp)
}

func (h *Handler) AcceptAppointment(c *gin.Context) {
	resp, err := h.calendar.AcceptAppointment(c.Request.Context(), &calendarpb.AcceptAppointmentRequest{
		AppointmentId: c.Param("appointment_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, http.StatusOK, resp)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	_, err := h.calendar.CancelAppointment(c.Request.Context(), &calendarpb.CancelAppointmentRequest{
		AppointmentId: c.Param("appointment_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
