package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamRideQuoted - стрим, из которого внешний API бронирования забирает подтверждённые оценки
const StreamRideQuoted = "stream:ride:quoted"

// RideQuotedEvent - событие о подтверждённой оценке поездки
type RideQuotedEvent struct {
	RideID          uuid.UUID  `json:"ride_id"`
	Start           Coordinate `json:"start"`
	StartName       string     `json:"start_name,omitempty"`
	Destination     Coordinate `json:"destination"`
	DestinationName string     `json:"destination_name,omitempty"`
	Estimate        Estimate   `json:"estimate"`
	QuotedAt        time.Time  `json:"quoted_at"`
}
