package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"

	calendarpb "github.com/Leganyst/session-scheduler/internal/api/calendar/v1"
	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/scheduling"
)

// CalendarService: gRPC-фасад над движком расписания. Разбирает запрос,
// вызывает компонент движка и переводит ошибки в статусы.
type CalendarService struct {
	calendarpb.UnimplementedCalendarServiceServer

	engine *scheduling.Engine
}

func NewCalendarService(engine *scheduling.Engine) *CalendarService {
	return &CalendarService{engine: engine}
}

// BookInstance занимает место на занятии.
func (s *CalendarService) BookInstance(ctx context.Context, req *calendarpb.BookInstanceRequest) (*calendarpb.BookInstanceResponse, error) {
	var f fields
	instanceID := f.uuid("instance_id", req.InstanceId)
	clientID := f.uuid("client_id", req.ClientId)
	if err := f.err(); err != nil {
		return nil, err
	}

	enrollment, err := s.engine.Enrollment.Book(ctx, instanceID, clientID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.BookInstanceResponse{Enrollment: mapEnrollment(enrollment)}, nil
}

// CancelInstance отменяет запись; с cascade: и на будущих занятиях серии.
func (s *CalendarService) CancelInstance(ctx context.Context, req *calendarpb.CancelInstanceRequest) (*calendarpb.CancelInstanceResponse, error) {
	var f fields
	cancel := scheduling.CancelRequest{
		InstanceID:    f.uuid("instance_id", req.InstanceId),
		ClientID:      f.uuid("client_id", req.ClientId),
		Cascade:       req.Cascade,
		ReferenceDate: f.optionalDate("reference_date", req.ReferenceDate),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	res, err := s.engine.Enrollment.Cancel(ctx, cancel)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.CancelInstanceResponse{
		CancelledInstanceIds: uuidStrings(res.Cancelled),
		Promoted:             mapWaitlist(res.Promoted),
	}, nil
}

func (s *CalendarService) JoinWaitlist(ctx context.Context, req *calendarpb.JoinWaitlistRequest) (*calendarpb.JoinWaitlistResponse, error) {
	var f fields
	instanceID := f.uuid("instance_id", req.InstanceId)
	clientID := f.uuid("client_id", req.ClientId)
	if err := f.err(); err != nil {
		return nil, err
	}

	entry, err := s.engine.Waitlist.JoinWaitlist(ctx, instanceID, clientID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.JoinWaitlistResponse{Entry: mapWaitlistEntry(entry)}, nil
}

func (s *CalendarService) LeaveWaitlist(ctx context.Context, req *calendarpb.LeaveWaitlistRequest) (*calendarpb.LeaveWaitlistResponse, error) {
	var f fields
	instanceID := f.uuid("instance_id", req.InstanceId)
	clientID := f.uuid("client_id", req.ClientId)
	if err := f.err(); err != nil {
		return nil, err
	}

	if err := s.engine.Waitlist.LeaveWaitlist(ctx, instanceID, clientID); err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.LeaveWaitlistResponse{}, nil
}

func (s *CalendarService) ExpireWaitlistEntry(ctx context.Context, req *calendarpb.ExpireWaitlistEntryRequest) (*calendarpb.ExpireWaitlistEntryResponse, error) {
	var f fields
	entryID := f.uuid("entry_id", req.EntryId)
	if err := f.err(); err != nil {
		return nil, err
	}

	entry, err := s.engine.Waitlist.ExpireWaitlistEntry(ctx, entryID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.ExpireWaitlistEntryResponse{Entry: mapWaitlistEntry(entry)}, nil
}

// CreateSeries создаёт серию и сразу материализует её занятия.
func (s *CalendarService) CreateSeries(ctx context.Context, req *calendarpb.CreateSeriesRequest) (*calendarpb.CreateSeriesResponse, error) {
	var f fields
	in := scheduling.CreateSeriesInput{
		Title:        req.Title,
		DayOfWeek:    int(req.DayOfWeek),
		StartTime:    f.clock("start_time", req.StartTime),
		EndTime:      f.clock("end_time", req.EndTime),
		StartDate:    f.date("start_date", req.StartDate),
		EndDate:      f.date("end_date", req.EndDate),
		Capacity:     int(req.Capacity),
		InstructorID: f.uuid("instructor_id", req.InstructorId),
		AsOf:         f.optionalDate("as_of", req.AsOf),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	series, instances, err := s.engine.Expander.CreateSeries(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.CreateSeriesResponse{
		Series:    mapSeries(series),
		Instances: mapInstances(instances),
	}, nil
}

// UpdateSeries правит занятие, а с cascade: и будущие неизменённые занятия серии.
func (s *CalendarService) UpdateSeries(ctx context.Context, req *calendarpb.UpdateSeriesRequest) (*calendarpb.UpdateSeriesResponse, error) {
	var f fields
	instanceID := f.uuid("instance_id", req.InstanceId)

	var patch scheduling.InstancePatch
	if req.StartTime != nil {
		start := f.clock("start_time", *req.StartTime)
		patch.StartTime = &start
	}
	if req.DurationMinutes != nil {
		d := int(*req.DurationMinutes)
		patch.DurationMinutes = &d
	}
	if req.Capacity != nil {
		c := int(*req.Capacity)
		patch.Capacity = &c
	}
	if req.InstructorId != nil {
		id := f.uuid("instructor_id", *req.InstructorId)
		patch.InstructorID = &id
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	res, err := s.engine.Cascade.UpdateInstance(ctx, instanceID, patch, req.Cascade)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.UpdateSeriesResponse{
		Updated:  mapInstances(res.Updated),
		Promoted: mapWaitlist(res.Promoted),
	}, nil
}

// DeleteSeries удаляет серию целиком (series_id) или занятие (instance_id,
// с cascade: и будущие неизменённые занятия той же серии).
func (s *CalendarService) DeleteSeries(ctx context.Context, req *calendarpb.DeleteSeriesRequest) (*calendarpb.DeleteSeriesResponse, error) {
	if (req.SeriesId == "") == (req.InstanceId == "") {
		return nil, toStatus(&scheduling.ValidationError{FieldErrors: map[string]string{
			"series_id": "exactly one of series_id and instance_id must be set",
		}})
	}

	var f fields
	var (
		res *scheduling.DeleteResult
		err error
	)
	if req.SeriesId != "" {
		seriesID := f.uuid("series_id", req.SeriesId)
		if err := f.err(); err != nil {
			return nil, err
		}
		res, err = s.engine.Cascade.DeleteSeries(ctx, seriesID)
	} else {
		instanceID := f.uuid("instance_id", req.InstanceId)
		if err := f.err(); err != nil {
			return nil, err
		}
		res, err = s.engine.Cascade.DeleteInstance(ctx, instanceID, req.Cascade)
	}
	if err != nil {
		return nil, toStatus(err)
	}

	return &calendarpb.DeleteSeriesResponse{
		DeletedInstanceIds:    uuidStrings(res.Deleted),
		CancelledEnrollments:  int32(res.Cancelled),
		ExpiredWaitlist:       int32(res.Expired),
		CancelledGuestSignups: int32(res.CancelledSignups),
	}, nil
}

// SubscribeToSeries: постоянная запись на серию до end_date.
func (s *CalendarService) SubscribeToSeries(ctx context.Context, req *calendarpb.SubscribeToSeriesRequest) (*calendarpb.SubscribeToSeriesResponse, error) {
	var f fields
	sub := scheduling.SubscribeRequest{
		SeriesID: f.uuid("series_id", req.SeriesId),
		ClientID: f.uuid("client_id", req.ClientId),
		EndDate:  f.date("end_date", req.EndDate),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	res, err := s.engine.Subscriptions.Subscribe(ctx, sub)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.SubscribeToSeriesResponse{
		Subscription: mapSubscription(res.Subscription),
		Outcomes:     mapOutcomes(res.Outcomes),
	}, nil
}

func (s *CalendarService) Unsubscribe(ctx context.Context, req *calendarpb.UnsubscribeRequest) (*calendarpb.UnsubscribeResponse, error) {
	var f fields
	seriesID := f.uuid("series_id", req.SeriesId)
	clientID := f.uuid("client_id", req.ClientId)
	if err := f.err(); err != nil {
		return nil, err
	}

	if err := s.engine.Subscriptions.Unsubscribe(ctx, seriesID, clientID); err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.UnsubscribeResponse{}, nil
}

// GetFreeSlots: свободные начала слотов специалиста на дату.
func (s *CalendarService) GetFreeSlots(ctx context.Context, req *calendarpb.GetFreeSlotsRequest) (*calendarpb.GetFreeSlotsResponse, error) {
	var f fields
	slotReq := calendar.SlotRequest{
		StaffID:         f.uuid("staff_id", req.StaffId),
		Date:            f.date("date", req.Date),
		DurationMinutes: int(req.DurationMinutes),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	starts, err := s.engine.Availability.FreeSlots(ctx, slotReq)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &calendarpb.GetFreeSlotsResponse{Slots: make([]string, 0, len(starts))}
	for _, start := range starts {
		resp.Slots = append(resp.Slots, calendar.FormatClock(datatypes.Time(start)))
	}
	return resp, nil
}

func (s *CalendarService) CreateGuestSignup(ctx context.Context, req *calendarpb.CreateGuestSignupRequest) (*calendarpb.CreateGuestSignupResponse, error) {
	var f fields
	in := scheduling.GuestSignupInput{
		InstanceID: f.uuid("instance_id", req.InstanceId),
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	signup, err := s.engine.Reschedule.CreateGuestSignup(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.CreateGuestSignupResponse{Signup: mapSignup(signup)}, nil
}

func (s *CalendarService) ProposeGuestReschedule(ctx context.Context, req *calendarpb.ProposeGuestRescheduleRequest) (*calendarpb.ProposeGuestRescheduleResponse, error) {
	var f fields
	signupID := f.uuid("signup_id", req.SignupId)
	proposedID := f.uuid("proposed_instance_id", req.ProposedInstanceId)
	if err := f.err(); err != nil {
		return nil, err
	}

	proposal, err := s.engine.Reschedule.ProposeReschedule(ctx, signupID, proposedID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.ProposeGuestRescheduleResponse{
		ProposalId: proposal.ID.String(),
		ExpiresAt:  timestamppb.New(proposal.ExpiresAt),
		Token:      proposal.Token,
	}, nil
}

func (s *CalendarService) ConfirmGuestReschedule(ctx context.Context, req *calendarpb.ConfirmGuestRescheduleRequest) (*calendarpb.ConfirmGuestRescheduleResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	signup, err := s.engine.Reschedule.Confirm(ctx, req.Token)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.ConfirmGuestRescheduleResponse{Signup: mapSignup(signup)}, nil
}

// ListInstances: занятия серии постранично.
func (s *CalendarService) ListInstances(ctx context.Context, req *calendarpb.ListInstancesRequest) (*calendarpb.ListInstancesResponse, error) {
	var f fields
	q := scheduling.ListInstancesQuery{
		SeriesID: f.uuid("series_id", req.SeriesId),
		From:     f.optionalDate("from", req.From),
		To:       f.optionalDate("to", req.To),
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	page, err := s.engine.ListInstances(ctx, q)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.ListInstancesResponse{
		Instances:  mapInstances(page.Items),
		Page:       int32(page.Page),
		PageSize:   int32(page.PageSize),
		TotalCount: int32(page.Total),
		HasNext:    page.HasNext,
	}, nil
}

// CreateInstance: разовое занятие вне серии.
func (s *CalendarService) CreateInstance(ctx context.Context, req *calendarpb.CreateInstanceRequest) (*calendarpb.CreateInstanceResponse, error) {
	var f fields
	in := scheduling.CreateInstanceInput{
		Date:            f.date("date", req.Date),
		StartTime:       f.clock("start_time", req.StartTime),
		DurationMinutes: int(req.DurationMinutes),
		Capacity:        int(req.Capacity),
		InstructorID:    f.uuid("instructor_id", req.InstructorId),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	instance, err := s.engine.Expander.CreateInstance(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.CreateInstanceResponse{Instance: mapInstance(instance)}, nil
}

func (s *CalendarService) GetInstance(ctx context.Context, req *calendarpb.GetInstanceRequest) (*calendarpb.GetInstanceResponse, error) {
	var f fields
	instanceID := f.uuid("instance_id", req.InstanceId)
	if err := f.err(); err != nil {
		return nil, err
	}

	instance, err := s.engine.GetInstance(ctx, instanceID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.GetInstanceResponse{Instance: mapInstance(instance)}, nil
}

// ListClientEnrollments: активные записи клиента начиная с from (по умолчанию сегодня).
func (s *CalendarService) ListClientEnrollments(ctx context.Context, req *calendarpb.ListClientEnrollmentsRequest) (*calendarpb.ListClientEnrollmentsResponse, error) {
	var f fields
	clientID := f.uuid("client_id", req.ClientId)
	from := f.optionalDate("from", req.From)
	if err := f.err(); err != nil {
		return nil, err
	}

	enrollments, err := s.engine.Enrollment.ListClientEnrollments(ctx, clientID, from)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &calendarpb.ListClientEnrollmentsResponse{
		Enrollments: make([]*calendarpb.Enrollment, 0, len(enrollments)),
	}
	for i := range enrollments {
		resp.Enrollments = append(resp.Enrollments, mapEnrollment(&enrollments[i]))
	}
	return resp, nil
}

func (s *CalendarService) ListWaitlist(ctx context.Context, req *calendarpb.ListWaitlistRequest) (*calendarpb.ListWaitlistResponse, error) {
	var f fields
	instanceID := f.uuid("instance_id", req.InstanceId)
	if err := f.err(); err != nil {
		return nil, err
	}

	entries, err := s.engine.Waitlist.ListWaitlist(ctx, instanceID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.ListWaitlistResponse{Entries: mapWaitlist(entries)}, nil
}

func (s *CalendarService) CreateProvider(ctx context.Context, req *calendarpb.CreateProviderRequest) (*calendarpb.CreateProviderResponse, error) {
	var f fields
	in := scheduling.ProviderInput{
		DisplayName:  req.DisplayName,
		Description:  req.Description,
		WorkingHours: make([]scheduling.WorkingHoursInput, 0, len(req.WorkingHours)),
	}
	for _, wh := range req.WorkingHours {
		in.WorkingHours = append(in.WorkingHours, f.workingHours("working_hours", wh))
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	provider, err := s.engine.Availability.CreateProvider(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.CreateProviderResponse{Provider: mapProvider(provider)}, nil
}

func (s *CalendarService) AddWorkingHours(ctx context.Context, req *calendarpb.AddWorkingHoursRequest) (*calendarpb.AddWorkingHoursResponse, error) {
	var f fields
	providerID := f.uuid("provider_id", req.ProviderId)
	if req.WorkingHours == nil {
		f.fail("working_hours", "is required")
	}
	wh := f.workingHours("working_hours", req.WorkingHours)
	if err := f.err(); err != nil {
		return nil, err
	}

	provider, err := s.engine.Availability.AddWorkingHours(ctx, providerID, wh)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.AddWorkingHoursResponse{Provider: mapProvider(provider)}, nil
}

// RequestAppointment: запрос индивидуального приёма на свободное окно.
func (s *CalendarService) RequestAppointment(ctx context.Context, req *calendarpb.RequestAppointmentRequest) (*calendarpb.RequestAppointmentResponse, error) {
	var f fields
	in := scheduling.AppointmentRequest{
		ProviderID:      f.uuid("provider_id", req.ProviderId),
		ClientID:        f.uuid("client_id", req.ClientId),
		Date:            f.date("date", req.Date),
		StartTime:       f.clock("start_time", req.StartTime),
		DurationMinutes: int(req.DurationMinutes),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	appointment, err := s.engine.Appointments.Request(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.RequestAppointmentResponse{Appointment: mapAppointment(appointment)}, nil
}

func (s *CalendarService) AcceptAppointment(ctx context.Context, req *calendarpb.AcceptAppointmentRequest) (*calendarpb.AcceptAppointmentResponse, error) {
	var f fields
	id := f.uuid("appointment_id", req.AppointmentId)
	if err := f.err(); err != nil {
		return nil, err
	}

	appointment, err := s.engine.Appointments.Accept(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.AcceptAppointmentResponse{Appointment: mapAppointment(appointment)}, nil
}

func (s *CalendarService) CancelAppointment(ctx context.Context, req *calendarpb.CancelAppointmentRequest) (*calendarpb.CancelAppointmentResponse, error) {
	var f fields
	id := f.uuid("appointment_id", req.AppointmentId)
	if err := f.err(); err != nil {
		return nil, err
	}

	if err := s.engine.Appointments.Cancel(ctx, id); err != nil {
		return nil, toStatus(err)
	}
	return &calendarpb.CancelAppointmentResponse{}, nil
}

var _ calendarpb.CalendarServiceServer = (*CalendarService)(nil)
