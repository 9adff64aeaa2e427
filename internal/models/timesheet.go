package models

// TimeRow is one converted duration line. Index is the 1-based line number
// in the source text, so skipped lines leave gaps. OriginalDecimalHours is
// the value at parse time and never changes afterward.
type TimeRow struct {
	Index                int     `json:"index"`
	DecimalHours         float64 `json:"time"`
	OriginalDecimalHours float64 `json:"originalTime"`
	Lunch                bool    `json:"lunch"`
	ForcedEight          bool    `json:"forced8h"`
}

type ConvertRequest struct {
	Input string `json:"input" validate:"required"`
}

type ConvertResponse struct {
	Rows    []TimeRow `json:"rows"`
	Skipped int       `json:"skipped"`
}

type ExportRequest struct {
	Rows []TimeRow `json:"rows"`
}
