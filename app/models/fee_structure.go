package models

import "time"

// FeeStructure is the per-class, per-period catalog of base fees. Updating it
// never retroactively changes balance records that were built from it.
type FeeStructure struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BranchID   string    `json:"branch_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID    string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PeriodID   string    `json:"period_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	BookFee    float64   `json:"book_fee" gorm:"not null;type:numeric" validate:"gte=0"`
	TuitionFee float64   `json:"tuition_fee" gorm:"not null;type:numeric" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at" gorm:"default:now()"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"default:now()"`
}

// TransportFeeSlab is one row of the transport route/slab fee catalog.
type TransportFeeSlab struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RouteID   string    `json:"route_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SlabID    string    `json:"slab_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount    float64   `json:"amount" gorm:"not null;type:numeric" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" gorm:"default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"default:now()"`
}
