package domain

import (
	"time"

	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// ScheduleSlot represents one staffed appointment unit: a doctor is allocated
// to the clinic at the given date and time of day. The schedule is the offer
// set only; committed bookings are tracked separately by the ledger.
type ScheduleSlot struct {
	Doctor string
	Date   time.Time // calendar date, time-of-day part is always zero
	Time   types.ClockTime
}
