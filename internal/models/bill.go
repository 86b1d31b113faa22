package models

import (
	"time"

	"github.com/google/uuid"
)

// Bill statuses as stored; anything else is legacy data and is
// passed through untouched by the formatting layer.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRefused  = "refused"
)

type Bill struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"index" json:"email"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	// Date stays a raw string: malformed historical dates exist and must
	// survive a list/format round trip unmodified.
	Date       string    `json:"date"`
	Amount     float64   `json:"amount"`
	Vat        string    `json:"vat"`
	Pct        int       `json:"pct"`
	Commentary string    `json:"commentary"`
	Status     string    `gorm:"index" json:"status"`
	FileURL    string    `json:"fileUrl"`
	FileName   string    `json:"fileName"`
	FileKey    string    `json:"key,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
