package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

var (
	jan28 = time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	jan29 = time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
)

func testSchedule() *Repository {
	return NewRepository([]domain.ScheduleSlot{
		{Doctor: "Adam", Date: jan28, Time: "09:00:00"},
		{Doctor: "Adam", Date: jan28, Time: "15:30:00"},
		{Doctor: "Daniel", Date: jan28, Time: "11:00:00"},
		{Doctor: "Adam", Date: jan29, Time: "10:00:00"},
	})
}

func TestRepository_IsAvailable(t *testing.T) {
	repo := testSchedule()

	tests := []struct {
		name   string
		doctor string
		date   time.Time
		time   types.ClockTime
		want   bool
	}{
		{"exact slot", "Adam", jan28, "15:30:00", true},
		{"another doctor same slot", "Daniel", jan28, "11:00:00", true},
		{"wrong time", "Adam", jan28, "16:00:00", false},
		{"wrong date", "Adam", jan29, "15:30:00", false},
		{"doctor name is case sensitive", "adam", jan28, "15:30:00", false},
		{"unknown doctor", "Eve", jan28, "09:00:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.IsAvailable(tt.doctor, tt.date, tt.time))
		})
	}
}

func TestRepository_IsAvailable_IgnoresTimeOfDayInDate(t *testing.T) {
	repo := testSchedule()

	// Значима только календарная дата, не момент внутри дня
	noon := time.Date(2025, 1, 28, 12, 0, 0, 0, time.UTC)
	assert.True(t, repo.IsAvailable("Adam", noon, "15:30:00"))
}

func TestRepository_FreeSlotsFor(t *testing.T) {
	repo := testSchedule()

	slots := repo.FreeSlotsFor("Adam", jan28)
	require.Len(t, slots, 2)

	// Порядок исходной выгрузки сохраняется
	assert.Equal(t, types.ClockTime("09:00:00"), slots[0])
	assert.Equal(t, types.ClockTime("15:30:00"), slots[1])
}

func TestRepository_FreeSlotsFor_Empty(t *testing.T) {
	repo := testSchedule()

	assert.Empty(t, repo.FreeSlotsFor("Eve", jan28))
	assert.Empty(t, repo.FreeSlotsFor("Daniel", jan29))
	assert.Empty(t, repo.FreeSlotsFor("adam", jan28))
}
