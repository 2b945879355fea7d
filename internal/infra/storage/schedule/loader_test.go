package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeCSV(t, "Name of Doctor,Date,Time\nAdam,1/28/2025,03:30:00 PM\nDaniel,1/28/2025,11:00:00 AM\n")

	repo, err := LoadFromFile(path)
	require.NoError(t, err)

	date := time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, repo.IsAvailable("Adam", date, "15:30:00"))
	assert.True(t, repo.IsAvailable("Daniel", date, "11:00:00"))
	assert.False(t, repo.IsAvailable("Adam", date, "11:00:00"))

	slots := repo.FreeSlotsFor("Adam", date)
	require.Len(t, slots, 1)
	assert.Equal(t, types.ClockTime("15:30:00"), slots[0])
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "no-such-file.csv"))
	assert.ErrorIs(t, err, ErrOpenFile)
}

func TestLoadFromFile_InvalidRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid date",
			content: "Name of Doctor,Date,Time\nAdam,28.01.2025,03:30:00 PM\n",
			wantErr: ErrInvalidRow,
		},
		{
			name:    "invalid time",
			content: "Name of Doctor,Date,Time\nAdam,1/28/2025,15:30\n",
			wantErr: ErrInvalidRow,
		},
		{
			name:    "empty doctor name",
			content: "Name of Doctor,Date,Time\n,1/28/2025,03:30:00 PM\n",
			wantErr: ErrInvalidRow,
		},
		{
			name:    "wrong column count",
			content: "Name of Doctor,Date,Time\nAdam,1/28/2025\n",
			wantErr: ErrReadFile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeCSV(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
