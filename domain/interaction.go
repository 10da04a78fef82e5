package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction kinds and their fixed scoring weights.
const (
	InteractionView     = "view"
	InteractionInquiry  = "inquiry"
	InteractionBooking  = "booking"
	InteractionPurchase = "purchase"
)

// InteractionWeights maps an interaction kind to its signal weight.
var InteractionWeights = map[string]float64{
	InteractionView:     1,
	InteractionInquiry:  2,
	InteractionBooking:  3,
	InteractionPurchase: 5,
}

// CREATE TABLE public.interactions (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id     BIGINT NOT NULL,
//     product_id  TEXT NOT NULL,
//     kind        TEXT NOT NULL,
//     category    TEXT NOT NULL,
//     weight      NUMERIC NOT NULL,
//     metadata    JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

// Interaction is an append-only engagement record. Rows are never updated
// or deleted; category and weight are denormalized at write time.
type Interaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID string            `gorm:"column:product_id;not null;index" json:"product_id"`
	Kind      string            `gorm:"column:kind;not null" json:"kind"`
	Category  string            `gorm:"column:category;not null" json:"category"`
	Weight    float64           `gorm:"column:weight;not null" json:"weight"`
	Metadata  datatypes.JSONMap `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}
