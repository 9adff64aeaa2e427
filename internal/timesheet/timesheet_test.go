package timesheet

import (
	"testing"

	"github.com/braianorozco10/portfolio-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SkipsBadLinesKeepingLineNumbers(t *testing.T) {
	rows, skipped := Parse("7h 30m\ngarbage\n8h 0m")

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 3, rows[1].Index, "skipped line should leave an index gap")
	assert.Equal(t, 7.50, rows[0].DecimalHours)
	assert.Equal(t, 8.00, rows[1].DecimalHours)
	assert.Equal(t, 1, skipped)
}

func TestParse_RoundsToTwoDecimals(t *testing.T) {
	rows, _ := Parse("7h 20m")

	require.Len(t, rows, 1)
	assert.Equal(t, 7.33, rows[0].DecimalHours)
	assert.Equal(t, 7.33, rows[0].OriginalDecimalHours)
}

func TestParse_EmptyInput(t *testing.T) {
	rows, skipped := Parse("")

	assert.Empty(t, rows)
	assert.Zero(t, skipped, "blank lines are not counted as skipped")
}

func TestToggleLunch_RoundTrip(t *testing.T) {
	rows, _ := Parse("7h 30m")
	r := &rows[0]

	ToggleLunch(r)
	assert.True(t, r.Lunch)
	assert.Equal(t, 8.50, r.DecimalHours)

	ToggleLunch(r)
	assert.False(t, r.Lunch)
	assert.Equal(t, 7.50, r.DecimalHours)
}

func TestToggleLunch_DisabledWhileForced(t *testing.T) {
	rows, _ := Parse("7h 30m")
	r := &rows[0]
	ToggleForceEight(r)

	ToggleLunch(r)

	assert.False(t, r.Lunch)
	assert.Equal(t, 8.00, r.DecimalHours)
}

func TestToggleForceEight_DiscardsLunchOnRestore(t *testing.T) {
	rows, _ := Parse("7h 30m")
	r := &rows[0]

	ToggleLunch(r)
	require.Equal(t, 8.50, r.DecimalHours)

	ToggleForceEight(r)
	assert.Equal(t, 8.00, r.DecimalHours)
	assert.True(t, r.ForcedEight)

	ToggleForceEight(r)
	assert.Equal(t, 7.50, r.DecimalHours, "restore uses the pristine original, not the lunch-adjusted value")
	assert.False(t, r.ForcedEight)
	assert.False(t, r.Lunch)
}

func TestExportCSV_TwoRowLayout(t *testing.T) {
	rows := []models.TimeRow{
		{Index: 1, DecimalHours: 7.5},
		{Index: 3, DecimalHours: 8},
	}

	out, err := ExportCSV(rows)
	require.NoError(t, err)

	assert.Equal(t, "#,1,3\nTime (Decimal),7.50,8.00\n", string(out))
}

func TestExportCSV_NoRows(t *testing.T) {
	_, err := ExportCSV(nil)
	assert.ErrorIs(t, err, ErrNoRows)
}
