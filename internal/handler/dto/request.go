package dto

type CreateBookingRequest struct {
	RoomID       string  `json:"room_id" binding:"required,uuid"`
	MemberID     *string `json:"member_id" binding:"omitempty,uuid"`
	ExternalName string  `json:"external_name"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	UsageType    string  `json:"usage_type" binding:"required,oneof=individual group"`
}

type ModifyBookingRequest struct {
	RoomID    string `json:"room_id" binding:"required,uuid"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	UsageType string `json:"usage_type" binding:"required,oneof=individual group"`
}

type RegisterEntryRequest struct {
	MemberID  string `json:"member_id" binding:"required,uuid"`
	EntryDate string `json:"entry_date" binding:"required"`
	Duration  string `json:"duration" binding:"required,oneof=half full"`
}

type EditEntryRequest struct {
	EntryDate string `json:"entry_date" binding:"required"`
	Duration  string `json:"duration" binding:"required,oneof=half full"`
}
