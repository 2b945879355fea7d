package domain

import (
	"time"

	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// BookingRecord represents a successfully committed appointment.
// Created only by the booking use case after the ledger accepted the slot.
type BookingRecord struct {
	Doctor      string
	Date        time.Time
	Time        types.ClockTime
	PatientName string
	Email       string

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}
