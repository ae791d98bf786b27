package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

// 2 March 2026 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestWithinBusinessHours(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		role  domain.Role
		want  bool
	}{
		{"inside opening hours", monday(10, 0), monday(12, 0), domain.RoleMember, true},
		{"exactly opening to closing", monday(9, 0), monday(18, 30), domain.RoleMember, true},
		{"starts before opening", monday(8, 30), monday(10, 0), domain.RoleMember, false},
		{"ends after closing", monday(17, 0), monday(19, 0), domain.RoleMember, false},
		{"saturday", monday(10, 0).AddDate(0, 0, 5), monday(11, 0).AddDate(0, 0, 5), domain.RoleMember, false},
		{"sunday", monday(10, 0).AddDate(0, 0, 6), monday(11, 0).AddDate(0, 0, 6), domain.RoleMember, false},
		{"host after closing", monday(19, 0), monday(21, 0), domain.RoleHost, true},
		{"admin on sunday", monday(10, 0).AddDate(0, 0, 6), monday(11, 0).AddDate(0, 0, 6), domain.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinBusinessHours(tt.start, tt.end, tt.role))
		})
	}
}

func TestRoomRestricted(t *testing.T) {
	open := &domain.Room{Name: "Alloro"}
	staff := &domain.Room{Name: "Sala Eventi", StaffOnly: true}

	assert.False(t, RoomRestricted(open, domain.RoleMember))
	assert.True(t, RoomRestricted(staff, domain.RoleMember))
	assert.False(t, RoomRestricted(staff, domain.RoleHost))
	assert.False(t, RoomRestricted(staff, domain.RoleAdmin))
}
