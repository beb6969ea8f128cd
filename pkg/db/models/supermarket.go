package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

// Supermarket is one store location with its opening schedule. OpenDays
// holds uppercase weekday names (types.Weekday values).
type Supermarket struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	OpensAt   types.TimeOfDay `gorm:"column:opens_at;type:varchar(5);not null"`
	ClosesAt  types.TimeOfDay `gorm:"column:closes_at;type:varchar(5);not null"`
	OpenDays  pq.StringArray  `gorm:"column:open_days;type:text[];not null;default:ARRAY[]::text[]"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// IsOpenAt reports whether the store trades on the given weekday at the
// given time, inclusive on both schedule bounds.
func (s Supermarket) IsOpenAt(day types.Weekday, at types.TimeOfDay) bool {
	for _, open := range s.OpenDays {
		if types.Weekday(open) == day {
			return at.Between(s.OpensAt, s.ClosesAt)
		}
	}
	return false
}
