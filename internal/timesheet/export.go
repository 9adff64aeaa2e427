package timesheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/braianorozco10/portfolio-server/internal/models"
)

// ExportFilename is the download name for the generated report.
const ExportFilename = "Converted_Times.csv"

var ErrNoRows = errors.New("no rows to export")

// ExportCSV renders the two-row report layout: indices across the first
// record, current decimal values across the second.
func ExportCSV(rows []models.TimeRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	indices := make([]string, 0, len(rows)+1)
	values := make([]string, 0, len(rows)+1)
	indices = append(indices, "#")
	values = append(values, "Time (Decimal)")
	for _, r := range rows {
		indices = append(indices, strconv.Itoa(r.Index))
		values = append(values, fmt.Sprintf("%.2f", r.DecimalHours))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(indices); err != nil {
		return nil, err
	}
	if err := w.Write(values); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
