package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

var (
	jan28 = time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	jan29 = time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)

	slot types.ClockTime = "15:30:00"
)

func TestLedger_CommitAndIsTaken(t *testing.T) {
	l := NewLedger()

	assert.False(t, l.IsTaken("Adam", jan28, slot))

	require.NoError(t, l.Commit("Adam", jan28, slot))
	assert.True(t, l.IsTaken("Adam", jan28, slot))
}

func TestLedger_DoubleCommit(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Commit("Adam", jan28, slot))
	assert.ErrorIs(t, l.Commit("Adam", jan28, slot), ErrSlotAlreadyTaken)
}

func TestLedger_SlotsAreIndependent(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Commit("Adam", jan28, slot))

	// Тот же слот у другого врача, другое время и другая дата свободны
	assert.NoError(t, l.Commit("Daniel", jan28, slot))
	assert.NoError(t, l.Commit("Adam", jan28, "16:00:00"))
	assert.NoError(t, l.Commit("Adam", jan29, slot))
}

func TestLedger_CommitNormalizesDate(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Commit("Adam", jan28, slot))

	// Момент внутри дня не влияет на ключ слота
	noon := time.Date(2025, 1, 28, 12, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, l.Commit("Adam", noon, slot), ErrSlotAlreadyTaken)
}

func TestLedger_ConcurrentCommitSingleWinner(t *testing.T) {
	l := NewLedger()

	const goroutines = 50

	var wg sync.WaitGroup
	results := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- l.Commit("Adam", jan28, slot)
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
		}
	}
	assert.Equal(t, 1, wins)
	assert.True(t, l.IsTaken("Adam", jan28, slot))
}
