package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/handler/dto"
	hmocks "github.com/michelangelopavia/neunoiapp-sub000/internal/handler/mocks"
)

type routerFixture struct {
	bookingSvc *hmocks.MockBookingSvc
	entrySvc   *hmocks.MockEntrySvc
	roomSvc    *hmocks.MockRoomSvc
	grantSvc   *hmocks.MockGrantSvc
	notifier   *hmocks.MockNotifier
	router     http.Handler
}

func setupRouter(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		bookingSvc: hmocks.NewMockBookingSvc(t),
		entrySvc:   hmocks.NewMockEntrySvc(t),
		roomSvc:    hmocks.NewMockRoomSvc(t),
		grantSvc:   hmocks.NewMockGrantSvc(t),
		notifier:   hmocks.NewMockNotifier(t),
	}

	h := NewHandler(f.bookingSvc, f.entrySvc, f.roomSvc, f.grantSvc, f.notifier)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/rooms", h.ListRooms)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListRoomBookings)
		api.PATCH("/bookings/:id", h.ModifyBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.GET("/members/:id/grants", h.ListMemberGrants)
		api.GET("/members/:id/bookings", h.ListMemberBookings)
		api.POST("/entries", h.RegisterEntry)
		api.PATCH("/entries/:id", h.EditEntry)
	}

	f.router = r
	return f
}

func sampleResult(memberID string) *domain.BookingResult {
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		RoomID:          uuid.New().String(),
		MemberID:        &memberID,
		StartTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		UsageType:       domain.UsageGroup,
		CreditsConsumed: decimal.NewFromInt(2),
		Status:          domain.BookingStatusConfirmed,
		CreatedAt:       time.Now(),
	}
	return &domain.BookingResult{
		Booking: booking,
		Applied: []domain.GrantDelta{{GrantID: uuid.New().String(), Hours: decimal.NewFromInt(2)}},
		Unmet:   decimal.Zero,
	}
}

// --- Rooms ---

func TestHandler_ListRooms_Success(t *testing.T) {
	f := setupRouter(t)

	rooms := []*domain.Room{
		{ID: "r1", Name: "Alloro", Capacity: 6, Color: "green", Active: true},
		{ID: "r2", Name: "Mirto", Capacity: 4, Color: "blue", Active: true},
	}
	f.roomSvc.EXPECT().List(mock.Anything).Return(rooms, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Alloro", resp[0].Name)
}

// --- Grants ---

func TestHandler_ListMemberGrants_Success(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	grants := []*domain.CreditGrant{
		{
			ID:         uuid.New().String(),
			MemberID:   memberID,
			HoursTotal: decimal.NewFromInt(10),
			HoursUsed:  decimal.NewFromFloat(2.5),
			Status:     domain.GrantStatusActive,
		},
	}
	f.grantSvc.EXPECT().ListByMember(mock.Anything, memberID).Return(grants, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/"+memberID+"/grants", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.GrantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2.5", resp[0].HoursUsed)
}

func TestHandler_ListMemberGrants_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/not-a-uuid/grants", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListMemberGrants_NotFound(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	f.grantSvc.EXPECT().ListByMember(mock.Anything, memberID).Return(nil, domain.ErrMemberNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/"+memberID+"/grants", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	res := sampleResult(memberID)

	f.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(res, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, res).Return()

	body, _ := json.Marshal(dto.CreateBookingRequest{
		RoomID:    res.Booking.RoomID,
		MemberID:  &memberID,
		StartTime: "2026-03-02T10:00:00Z",
		EndTime:   "2026-03-02T12:00:00Z",
		UsageType: "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2", resp.Booking.CreditsConsumed)
	assert.Len(t, resp.Applied, 1)
	assert.Equal(t, "0", resp.Overage)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestHandler_CreateBooking_BadBody(t *testing.T) {
	f := setupRouter(t)

	body := []byte(`{"room_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BadTimestamp(t *testing.T) {
	f := setupRouter(t)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		RoomID:       uuid.New().String(),
		ExternalName: "Studio Rossi",
		StartTime:    "not-a-time",
		EndTime:      "2026-03-02T12:00:00Z",
		UsageType:    "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	f := setupRouter(t)

	f.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSchedulingConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		RoomID:       uuid.New().String(),
		ExternalName: "Studio Rossi",
		StartTime:    "2026-03-02T10:00:00Z",
		EndTime:      "2026-03-02T12:00:00Z",
		UsageType:    "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_InsufficientCredit(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	f.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientCredit)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		RoomID:    uuid.New().String(),
		MemberID:  &memberID,
		StartTime: "2026-03-02T10:00:00Z",
		EndTime:   "2026-03-02T12:00:00Z",
		UsageType: "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_StaffRoom(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	f.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrRoomRestricted)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		RoomID:    uuid.New().String(),
		MemberID:  &memberID,
		StartTime: "2026-03-02T10:00:00Z",
		EndTime:   "2026-03-02T12:00:00Z",
		UsageType: "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ModifyBooking_Success(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	res := sampleResult(memberID)

	f.bookingSvc.EXPECT().Modify(mock.Anything, res.Booking.ID, mock.Anything).Return(res, nil)

	body, _ := json.Marshal(dto.ModifyBookingRequest{
		RoomID:    res.Booking.RoomID,
		StartTime: "2026-03-02T10:00:00Z",
		EndTime:   "2026-03-02T13:00:00Z",
		UsageType: "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+res.Booking.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ModifyBooking_InvalidID(t *testing.T) {
	f := setupRouter(t)

	body, _ := json.Marshal(dto.ModifyBookingRequest{
		RoomID:    uuid.New().String(),
		StartTime: "2026-03-02T10:00:00Z",
		EndTime:   "2026-03-02T12:00:00Z",
		UsageType: "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/bad-id", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ModifyBooking_NotConfirmed(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	f.bookingSvc.EXPECT().Modify(mock.Anything, bookingID, mock.Anything).Return(nil, domain.ErrBookingNotConfirmed)

	body, _ := json.Marshal(dto.ModifyBookingRequest{
		RoomID:    uuid.New().String(),
		StartTime: "2026-03-02T10:00:00Z",
		EndTime:   "2026-03-02T12:00:00Z",
		UsageType: "group",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	res := sampleResult(memberID)
	res.Booking.Status = domain.BookingStatusCancelled

	f.bookingSvc.EXPECT().Cancel(mock.Anything, res.Booking.ID).Return(res, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, res).Return()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+res.Booking.ID, nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Booking.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	f.bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListRoomBookings_Success(t *testing.T) {
	f := setupRouter(t)

	roomID := uuid.New().String()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{sampleResult(uuid.New().String()).Booking}

	f.bookingSvc.EXPECT().ListRoomDay(mock.Anything, roomID, day).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?room_id="+roomID+"&date=2026-03-02", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListRoomBookings_BadDate(t *testing.T) {
	f := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?room_id="+uuid.New().String()+"&date=march-2nd", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListMemberBookings_Success(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	bookings := []*domain.Booking{sampleResult(memberID).Booking}

	f.bookingSvc.EXPECT().ListByMember(mock.Anything, memberID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/"+memberID+"/bookings", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Entries ---

func TestHandler_RegisterEntry_Success(t *testing.T) {
	f := setupRouter(t)

	memberID := uuid.New().String()
	res := &domain.EntryResult{
		Entry: &domain.EntryRecord{
			ID:             uuid.New().String(),
			GrantID:        uuid.New().String(),
			MemberID:       memberID,
			EntryDate:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Duration:       domain.EntryHalfDay,
			TokensConsumed: 1,
		},
		Applied: []domain.TokenDelta{{GrantID: uuid.New().String(), Tokens: 1}},
	}

	f.entrySvc.EXPECT().Register(mock.Anything, mock.Anything).Return(res, nil)
	f.notifier.EXPECT().NotifyEntryRegistered(mock.Anything, res).Return()

	body, _ := json.Marshal(dto.RegisterEntryRequest{
		MemberID:  memberID,
		EntryDate: "2026-03-02",
		Duration:  "half",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EntryResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Entry.TokensConsumed)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestHandler_RegisterEntry_BadDuration(t *testing.T) {
	f := setupRouter(t)

	body := []byte(`{"member_id":"` + uuid.New().String() + `","entry_date":"2026-03-02","duration":"weekly"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterEntry_NoTokens(t *testing.T) {
	f := setupRouter(t)

	f.entrySvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientCredit)

	body, _ := json.Marshal(dto.RegisterEntryRequest{
		MemberID:  uuid.New().String(),
		EntryDate: "2026-03-02",
		Duration:  "full",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EditEntry_Success(t *testing.T) {
	f := setupRouter(t)

	entryID := uuid.New().String()
	res := &domain.EntryResult{
		Entry: &domain.EntryRecord{
			ID:             entryID,
			GrantID:        uuid.New().String(),
			MemberID:       uuid.New().String(),
			EntryDate:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Duration:       domain.EntryFullDay,
			TokensConsumed: 2,
		},
	}

	f.entrySvc.EXPECT().Edit(mock.Anything, entryID, mock.Anything).Return(res, nil)

	body, _ := json.Marshal(dto.EditEntryRequest{
		EntryDate: "2026-03-02",
		Duration:  "full",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/entries/"+entryID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EntryResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "full", resp.Entry.Duration)
}

func TestHandler_EditEntry_InvalidID(t *testing.T) {
	f := setupRouter(t)

	body, _ := json.Marshal(dto.EditEntryRequest{EntryDate: "2026-03-02", Duration: "half"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/entries/bad-id", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_EditEntry_NotFound(t *testing.T) {
	f := setupRouter(t)

	entryID := uuid.New().String()
	f.entrySvc.EXPECT().Edit(mock.Anything, entryID, mock.Anything).Return(nil, domain.ErrEntryNotFound)

	body, _ := json.Marshal(dto.EditEntryRequest{EntryDate: "2026-03-02", Duration: "half"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/entries/"+entryID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	f := setupRouter(t)

	f.roomSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
