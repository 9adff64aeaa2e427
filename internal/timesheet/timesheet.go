// Package timesheet converts "Hh Mm" duration lines to decimal hours and
// applies the manual per-row adjustments the time converter page offers.
package timesheet

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/braianorozco10/portfolio-server/internal/models"
)

var linePattern = regexp.MustCompile(`(\d+)h\s+(\d+)m`)

// lunchHours is the fixed deduction/addition the lunch toggle applies.
const lunchHours = 1.0

// Parse converts free text, one duration per line, into rows. Lines that
// do not match "<int>h <int>m" are skipped without aborting the rest;
// the row index is the 1-based source line number, so skipped lines leave
// gaps. The skipped count is returned for callers that want to surface it.
func Parse(input string) ([]models.TimeRow, int) {
	lines := strings.Split(input, "\n")
	rows := make([]models.TimeRow, 0, len(lines))
	skipped := 0
	for i, line := range lines {
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				skipped++
			}
			continue
		}
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		val := round2(float64(hours) + float64(minutes)/60)
		rows = append(rows, models.TimeRow{
			Index:                i + 1,
			DecimalHours:         val,
			OriginalDecimalHours: val,
		})
	}
	return rows, skipped
}

// ToggleLunch flips the lunch adjustment, adding an hour when it turns on
// and removing it when it turns off, always against the row's current
// value. It is a no-op while the row is forced to 8h.
func ToggleLunch(r *models.TimeRow) {
	if r.ForcedEight {
		return
	}
	r.Lunch = !r.Lunch
	if r.Lunch {
		r.DecimalHours = round2(r.DecimalHours + lunchHours)
	} else {
		r.DecimalHours = round2(r.DecimalHours - lunchHours)
	}
}

// ToggleForceEight pins the row to exactly 8.0 hours, or releases it back
// to the value captured at parse time. Releasing restores the pristine
// original: any lunch adjustment in effect before forcing is discarded,
// not reapplied.
func ToggleForceEight(r *models.TimeRow) {
	if r.ForcedEight {
		r.ForcedEight = false
		r.Lunch = false
		r.DecimalHours = r.OriginalDecimalHours
		return
	}
	r.ForcedEight = true
	r.DecimalHours = 8.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
