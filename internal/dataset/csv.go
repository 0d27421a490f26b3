package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// Columns is the fixed, ordered output column set.
var Columns = []string{
	"season",
	"date",
	"game_id",
	"team",
	"opponent",
	"is_home",
	"goals_for",
	"goals_against",
	"goal_diff",
	"rest_days",
	"travel_distance",
	"opponent_win_pct",
}

// WriteCSV encodes the derived table. Undefined feature values render as
// empty cells, never as zeros.
func WriteCSV(w io.Writer, records []domain.DerivedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(r domain.DerivedRecord) []string {
	isHome := "0"
	if r.IsHome {
		isHome = "1"
	}
	return []string{
		r.Season,
		r.Date,
		strconv.Itoa(r.GameID),
		r.Team,
		r.Opponent,
		isHome,
		strconv.Itoa(r.GoalsFor),
		strconv.Itoa(r.GoalsAgainst),
		strconv.Itoa(r.GoalDiff),
		formatOptionalInt(r.RestDays),
		formatOptionalFloat(r.TravelDistance),
		formatOptionalFloat(r.OpponentWinPct),
	}
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
