package service

import (
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"

	calendarpb "github.com/Leganyst/session-scheduler/internal/api/calendar/v1"
	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/scheduling"
)

// fields собирает ошибки разбора запроса, чтобы вернуть их одним
// InvalidArgument, а не по одной.
type fields struct {
	errs map[string]string
}

func (f *fields) fail(field, msg string) {
	if f.errs == nil {
		f.errs = make(map[string]string)
	}
	if _, ok := f.errs[field]; !ok {
		f.errs[field] = msg
	}
}

func (f *fields) err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return toStatus(&scheduling.ValidationError{FieldErrors: f.errs})
}

func (f *fields) uuid(field, s string) uuid.UUID {
	if s == "" {
		f.fail(field, "is required")
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		f.fail(field, "must be a valid UUID")
		return uuid.Nil
	}
	return id
}

func (f *fields) date(field, s string) time.Time {
	if s == "" {
		f.fail(field, "is required")
		return time.Time{}
	}
	return f.optionalDate(field, s)
}

// optionalDate: пустая строка даёт нулевое время (движок подставит сегодня).
func (f *fields) optionalDate(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		f.fail(field, "must be a date in YYYY-MM-DD format")
		return time.Time{}
	}
	return d
}

func (f *fields) clock(field, s string) datatypes.Time {
	if s == "" {
		f.fail(field, "is required")
		return 0
	}
	c, err := calendar.ParseClock(s)
	if err != nil {
		f.fail(field, "must be a time of day in HH:MM format")
		return 0
	}
	return c
}

func (f *fields) workingHours(field string, wh *calendarpb.WorkingHours) scheduling.WorkingHoursInput {
	if wh == nil {
		return scheduling.WorkingHoursInput{}
	}
	return scheduling.WorkingHoursInput{
		DayOfWeek: int(wh.DayOfWeek),
		StartTime: f.clock(field+".start_time", wh.StartTime),
		EndTime:   f.clock(field+".end_time", wh.EndTime),
	}
}

func optionalString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func mapSeries(s *model.RecurringSeries) *calendarpb.Series {
	if s == nil {
		return nil
	}
	return &calendarpb.Series{
		Id:           s.ID.String(),
		Title:        s.Title,
		DayOfWeek:    int32(s.DayOfWeek),
		StartTime:    calendar.FormatClock(s.StartTime),
		EndTime:      calendar.FormatClock(s.EndTime),
		StartDate:    calendar.FormatDate(time.Time(s.StartDate)),
		EndDate:      calendar.FormatDate(time.Time(s.EndDate)),
		Capacity:     int32(s.Capacity),
		InstructorId: s.InstructorID.String(),
	}
}

func mapInstance(i *model.SessionInstance) *calendarpb.Instance {
	return &calendarpb.Instance{
		Id:               i.ID.String(),
		SeriesId:         optionalString(i.ParentSeriesID),
		Date:             calendar.FormatDate(i.Day()),
		StartTime:        calendar.FormatClock(i.StartTime),
		DurationMinutes:  int32(i.DurationMinutes),
		Capacity:         int32(i.Capacity),
		ParticipantCount: int32(i.ParticipantCount),
		InstructorId:     i.InstructorID.String(),
		IsGenerated:      i.IsGeneratedInstance,
		IsOverridden:     i.IsOverridden,
	}
}

func mapInstances(items []model.SessionInstance) []*calendarpb.Instance {
	out := make([]*calendarpb.Instance, 0, len(items))
	for i := range items {
		out = append(out, mapInstance(&items[i]))
	}
	return out
}

func mapEnrollment(e *model.Enrollment) *calendarpb.Enrollment {
	return &calendarpb.Enrollment{
		Id:         e.ID.String(),
		InstanceId: e.InstanceID.String(),
		ClientId:   e.ClientID.String(),
		Status:     string(e.Status),
		CreatedAt:  timestamppb.New(e.CreatedAt),
	}
}

func mapWaitlistEntry(w *model.WaitlistEntry) *calendarpb.WaitlistEntry {
	return &calendarpb.WaitlistEntry{
		Id:         w.ID.String(),
		InstanceId: w.InstanceID.String(),
		ClientId:   w.ClientID.String(),
		Status:     string(w.Status),
		CreatedAt:  timestamppb.New(w.CreatedAt),
		NotifiedAt: optionalTimestamp(w.NotifiedAt),
	}
}

func mapWaitlist(entries []model.WaitlistEntry) []*calendarpb.WaitlistEntry {
	out := make([]*calendarpb.WaitlistEntry, 0, len(entries))
	for i := range entries {
		out = append(out, mapWaitlistEntry(&entries[i]))
	}
	return out
}

func mapSubscription(s *model.SeriesSubscription) *calendarpb.Subscription {
	return &calendarpb.Subscription{
		Id:        s.ID.String(),
		SeriesId:  s.SeriesID.String(),
		ClientId:  s.ClientID.String(),
		StartDate: calendar.FormatDate(time.Time(s.StartDate)),
		EndDate:   calendar.FormatDate(time.Time(s.EndDate)),
		IsActive:  s.IsActive,
	}
}

func mapOutcomes(outcomes []scheduling.InstanceOutcome) []*calendarpb.InstanceOutcome {
	out := make([]*calendarpb.InstanceOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		item := &calendarpb.InstanceOutcome{
			InstanceId: o.InstanceID.String(),
			Date:       calendar.FormatDate(o.Date),
			Outcome:    string(o.Outcome),
		}
		if o.Err != nil {
			item.Error = scheduling.ErrorKind(o.Err)
		}
		out = append(out, item)
	}
	return out
}

func mapSignup(g *model.GuestSignup) *calendarpb.GuestSignup {
	return &calendarpb.GuestSignup{
		Id:         g.ID.String(),
		InstanceId: g.InstanceID.String(),
		GuestName:  g.GuestName,
		Status:     string(g.Status),
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func mapProvider(p *model.Provider) *calendarpb.Provider {
	out := &calendarpb.Provider{
		Id:           p.ID.String(),
		DisplayName:  p.DisplayName,
		Description:  p.Description,
		WorkingHours: make([]*calendarpb.WorkingHours, 0, len(p.WorkingHours)),
	}
	for _, wh := range p.WorkingHours {
		out.WorkingHours = append(out.WorkingHours, &calendarpb.WorkingHours{
			DayOfWeek: int32(wh.DayOfWeek),
			StartTime: calendar.FormatClock(wh.StartTime),
			EndTime:   calendar.FormatClock(wh.EndTime),
		})
	}
	return out
}

func mapAppointment(a *model.Appointment) *calendarpb.Appointment {
	return &calendarpb.Appointment{
		Id:              a.ID.String(),
		ProviderId:      a.ProviderID.String(),
		ClientId:        a.ClientID.String(),
		Date:            calendar.FormatDate(time.Time(a.Date)),
		StartTime:       calendar.FormatClock(a.StartTime),
		DurationMinutes: int32(a.DurationMinutes),
		Status:          string(a.Status),
		PaymentPending:  a.PaymentPending,
	}
}
