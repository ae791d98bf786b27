package dto

import (
	"time"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

const dateLayout = "2006-01-02"

type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Color     string `json:"color"`
	StaffOnly bool   `json:"staff_only"`
}

type GrantResponse struct {
	ID           string `json:"id"`
	ValidFrom    string `json:"valid_from"`
	ValidTo      string `json:"valid_to"`
	HoursTotal   string `json:"hours_total"`
	HoursUsed    string `json:"hours_used"`
	EntriesTotal int    `json:"entries_total"`
	EntriesUsed  int    `json:"entries_used"`
	Status       string `json:"status"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"room_id"`
	MemberID        *string `json:"member_id,omitempty"`
	ExternalName    string  `json:"external_name,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	UsageType       string  `json:"usage_type"`
	CreditsConsumed string  `json:"credits_consumed"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

type GrantDeltaResponse struct {
	GrantID string `json:"grant_id"`
	Hours   string `json:"hours"`
}

type BookingResultResponse struct {
	Booking BookingResponse      `json:"booking"`
	Applied []GrantDeltaResponse `json:"applied"`
	Overage string               `json:"overage"`
}

type EntryResponse struct {
	ID             string `json:"id"`
	GrantID        string `json:"grant_id"`
	MemberID       string `json:"member_id"`
	EntryDate      string `json:"entry_date"`
	Duration       string `json:"duration"`
	TokensConsumed int    `json:"tokens_consumed"`
}

type TokenDeltaResponse struct {
	GrantID string `json:"grant_id"`
	Tokens  int    `json:"tokens"`
}

type EntryResultResponse struct {
	Entry   EntryResponse        `json:"entry"`
	Applied []TokenDeltaResponse `json:"applied"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Color:     r.Color,
		StaffOnly: r.StaffOnly,
	}
}

func ToGrantResponse(g *domain.CreditGrant) GrantResponse {
	return GrantResponse{
		ID:           g.ID,
		ValidFrom:    g.ValidFrom.Format(dateLayout),
		ValidTo:      g.ValidTo.Format(dateLayout),
		HoursTotal:   g.HoursTotal.String(),
		HoursUsed:    g.HoursUsed.String(),
		EntriesTotal: g.EntriesTotal,
		EntriesUsed:  g.EntriesUsed,
		Status:       string(g.Status),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		RoomID:          b.RoomID,
		MemberID:        b.MemberID,
		ExternalName:    b.ExternalName,
		StartTime:       b.StartTime.Format(time.RFC3339),
		EndTime:         b.EndTime.Format(time.RFC3339),
		UsageType:       string(b.UsageType),
		CreditsConsumed: b.CreditsConsumed.String(),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResultResponse(res *domain.BookingResult) BookingResultResponse {
	applied := make([]GrantDeltaResponse, 0, len(res.Applied))
	for _, d := range res.Applied {
		applied = append(applied, GrantDeltaResponse{GrantID: d.GrantID, Hours: d.Hours.String()})
	}

	return BookingResultResponse{
		Booking: ToBookingResponse(res.Booking),
		Applied: applied,
		Overage: res.Unmet.String(),
	}
}

func ToEntryResponse(e *domain.EntryRecord) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		GrantID:        e.GrantID,
		MemberID:       e.MemberID,
		EntryDate:      e.EntryDate.Format(dateLayout),
		Duration:       string(e.Duration),
		TokensConsumed: e.TokensConsumed,
	}
}

func ToEntryResultResponse(res *domain.EntryResult) EntryResultResponse {
	applied := make([]TokenDeltaResponse, 0, len(res.Applied))
	for _, d := range res.Applied {
		applied = append(applied, TokenDeltaResponse{GrantID: d.GrantID, Tokens: d.Tokens})
	}

	return EntryResultResponse{
		Entry:   ToEntryResponse(res.Entry),
		Applied: applied,
	}
}
