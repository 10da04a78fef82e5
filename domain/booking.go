package domain

import "time"

const (
	BookingPending     = "pending"
	BookingConfirmed   = "confirmed"
	BookingCompleted   = "completed"
	BookingCancelled   = "cancelled"
	BookingRescheduled = "rescheduled"
)

// Booking is a calibration service booking. ProductRef holds either the
// catalog id or the product display name; older rows carry the name.
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductRef string    `gorm:"column:product_ref;not null" json:"product_ref"`
	Status     string    `gorm:"column:status;not null;default:pending" json:"status"`
	ServiceAt  time.Time `gorm:"column:service_at" json:"service_at"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
