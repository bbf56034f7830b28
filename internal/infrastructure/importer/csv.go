package importer

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

// expected header: date,home_team,away_team,home_score,away_score
var expectedColumns = []string{"date", "home_team", "away_team", "home_score", "away_score"}

// ReadCSVFile loads a match corpus from a CSV export. Empty or "NA" score
// cells become absent scores; those rows stay in the corpus as unscored
// fixtures.
func ReadCSVFile(path string) ([]match.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open corpus file %s", path)
	}
	defer f.Close()

	matches, err := ReadCSV(f)
	if err != nil {
		return nil, crerr.Wrapf(err, "read corpus file %s", path)
	}
	return matches, nil
}

func ReadCSV(r io.Reader) ([]match.Match, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, crerr.Wrap(err, "read header")
	}
	columns, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []match.Match
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, crerr.Wrapf(err, "read record at line %d", line)
		}

		m, err := parseRecord(record, columns)
		if err != nil {
			return nil, crerr.Wrapf(err, "parse record at line %d", line)
		}
		out = append(out, m)
	}

	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range expectedColumns {
		if _, ok := index[required]; !ok {
			return nil, crerr.Newf("missing column %q in header", required)
		}
	}
	return index, nil
}

func parseRecord(record []string, columns map[string]int) (match.Match, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := time.Parse("2006-01-02", field("date"))
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "parse date %q", field("date"))
	}

	homeTeam := field("home_team")
	awayTeam := field("away_team")
	if homeTeam == "" || awayTeam == "" {
		return match.Match{}, crerr.New("home and away team names are required")
	}

	homeScore, err := parseScore(field("home_score"))
	if err != nil {
		return match.Match{}, err
	}
	awayScore, err := parseScore(field("away_score"))
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		Date:      date,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}, nil
}

func parseScore(value string) (*int, error) {
	switch strings.ToUpper(value) {
	case "", "NA", "<NA>", "NULL":
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse score %q", value)
	}
	if n < 0 {
		return nil, crerr.Newf("negative score %d", n)
	}
	return &n, nil
}
