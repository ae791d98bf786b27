package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/handler/dto"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingResult, error)
	Modify(ctx context.Context, bookingID string, input domain.ModifyBookingInput) (*domain.BookingResult, error)
	Cancel(ctx context.Context, bookingID string) (*domain.BookingResult, error)
	ListRoomDay(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
}

type EntrySvc interface {
	Register(ctx context.Context, input domain.RegisterEntryInput) (*domain.EntryResult, error)
	Edit(ctx context.Context, entryID string, input domain.EditEntryInput) (*domain.EntryResult, error)
}

type RoomSvc interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

type GrantSvc interface {
	ListByMember(ctx context.Context, memberID string) ([]*domain.CreditGrant, error)
}

// Notifier consumes the plain transaction results the engine returns; the
// engine itself owns no callbacks.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, res *domain.BookingResult)
	NotifyBookingCancelled(ctx context.Context, res *domain.BookingResult)
	NotifyEntryRegistered(ctx context.Context, res *domain.EntryResult)
}

type Handler struct {
	bookingService BookingSvc
	entryService   EntrySvc
	roomService    RoomSvc
	grantService   GrantSvc
	notifier       Notifier
}

func NewHandler(bookingService BookingSvc, entryService EntrySvc, roomService RoomSvc, grantService GrantSvc, notifier Notifier) *Handler {
	return &Handler{
		bookingService: bookingService,
		entryService:   entryService,
		roomService:    roomService,
		grantService:   grantService,
		notifier:       notifier,
	}
}

// Rooms

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Grants

func (h *Handler) ListMemberGrants(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	grants, err := h.grantService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GrantResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, dto.ToGrantResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := parseInterval(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	input := domain.CreateBookingInput{
		RoomID:       req.RoomID,
		MemberID:     req.MemberID,
		ExternalName: req.ExternalName,
		StartTime:    start,
		EndTime:      end,
		UsageType:    domain.UsageType(req.UsageType),
	}

	res, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	go h.notifier.NotifyBookingConfirmed(context.WithoutCancel(c.Request.Context()), res)

	c.JSON(http.StatusCreated, dto.ToBookingResultResponse(res))
}

func (h *Handler) ModifyBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := parseInterval(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	input := domain.ModifyBookingInput{
		RoomID:    req.RoomID,
		StartTime: start,
		EndTime:   end,
		UsageType: domain.UsageType(req.UsageType),
	}

	res, err := h.bookingService.Modify(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResultResponse(res))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	res, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	go h.notifier.NotifyBookingCancelled(context.WithoutCancel(c.Request.Context()), res)

	c.JSON(http.StatusOK, dto.ToBookingResultResponse(res))
}

func (h *Handler) ListRoomBookings(c *ginext.Context) {
	roomID := c.Query("room_id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room_id"})
		return
	}

	day, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	bookings, err := h.bookingService.ListRoomDay(c.Request.Context(), roomID, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingList(bookings))
}

func (h *Handler) ListMemberBookings(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	bookings, err := h.bookingService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingList(bookings))
}

// Entries

func (h *Handler) RegisterEntry(c *ginext.Context) {
	var req dto.RegisterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	entryDate, err := time.Parse(dateLayout, req.EntryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry_date, expected YYYY-MM-DD"})
		return
	}

	input := domain.RegisterEntryInput{
		MemberID:  req.MemberID,
		EntryDate: entryDate,
		Duration:  domain.EntryDuration(req.Duration),
	}

	res, err := h.entryService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	go h.notifier.NotifyEntryRegistered(context.WithoutCancel(c.Request.Context()), res)

	c.JSON(http.StatusCreated, dto.ToEntryResultResponse(res))
}

func (h *Handler) EditEntry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry id"})
		return
	}

	var req dto.EditEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	entryDate, err := time.Parse(dateLayout, req.EntryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry_date, expected YYYY-MM-DD"})
		return
	}

	input := domain.EditEntryInput{
		EntryDate: entryDate,
		Duration:  domain.EntryDuration(req.Duration),
	}

	res, err := h.entryService.Edit(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResultResponse(res))
}

func parseInterval(c *ginext.Context, startRaw, endRaw string) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func toBookingList(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrGrantNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSchedulingConflict),
		errors.Is(err, domain.ErrInsufficientCredit),
		errors.Is(err, domain.ErrBookingNotConfirmed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomRestricted):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrOutsideBusinessHours):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
