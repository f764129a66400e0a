package httpapi

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	calendarpb "github.com/Leganyst/session-scheduler/internal/api/calendar/v1"
	"github.com/Leganyst/session-scheduler/internal/mw"
)

type RouterOptions struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	Logger          *log.Logger
}

// NewRouter собирает gin-роутер /api/v1 поверх реализации CalendarService.
func NewRouter(calendar calendarpb.CalendarServiceServer, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger(opts.Logger))

	h := NewHandler(calendar)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api/v1")
	if opts.RateLimitPerSec > 0 {
		limiter := mw.NewIPRateLimiter(rate.Limit(opts.RateLimitPerSec), opts.RateLimitBurst, 10*time.Minute)
		api.Use(mw.RateLimiter(limiter))
	}
	{
		api.POST("/series", h.CreateSeries)
		api.DELETE("/series/:series_id", h.DeleteSeries)
		api.GET("/series/:series_id/instances", h.ListInstances)
		api.POST("/series/:series_id/subscriptions", h.Subscribe)
		api.DELETE("/series/:series_id/subscriptions/:client_id", h.Unsubscribe)

		api.POST("/instances", h.CreateInstance)
		api.GET("/instances/:instance_id", h.GetInstance)
		api.PATCH("/instances/:instance_id", h.UpdateInstance)
		api.DELETE("/instances/:instance_id", h.DeleteInstance)
		api.POST("/instances/:instance_id/enrollments", h.Book)
		api.DELETE("/instances/:instance_id/enrollments/:client_id", h.Cancel)
		api.GET("/instances/:instance_id/waitlist", h.ListWaitlist)
		api.POST("/instances/:instance_id/waitlist", h.JoinWaitlist)
		api.DELETE("/instances/:instance_id/waitlist/:client_id", h.LeaveWaitlist)
		api.POST("/waitlist/:entry_id/expire", h.ExpireWaitlistEntry)
		api.GET("/clients/:client_id/enrollments", h.ClientEnrollments)

		api.POST("/staff", h.CreateProvider)
		api.POST("/staff/:staff_id/working-hours", h.AddWorkingHours)
		api.GET("/staff/:staff_id/free-slots", h.FreeSlots)
		api.POST("/staff/:staff_id/appointments", h.RequestAppointment)
		api.POST("/appointments/:appointment_id/accept", h.AcceptAppointment)
		api.DELETE("/appointments/:appointment_id", h.CancelAppointment)

		api.POST("/guest-signups", h.CreateGuestSignup)
		api.POST("/guest-signups/:signup_id/reschedule", h.ProposeReschedule)
		api.POST("/reschedule/confirm", h.ConfirmReschedule)
	}

	return r
}
