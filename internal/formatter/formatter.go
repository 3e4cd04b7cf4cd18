// package formatter renders catalog and library listings in plain text, CSV, and Markdown
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
)

// Format identifies an output format for listings.
type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatCSV, FormatMarkdown:
		return Format(s), nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
	}
}

// Movies renders a movie listing in the requested format.
func Movies(movies []models.Movie, format Format) ([]byte, error) {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			strconv.Itoa(m.ID), m.Title, m.ReleaseDate, formatRating(m.VoteAverage),
		})
	}
	return render(movieHeaders, rows, format)
}

// Series renders a series listing in the requested format.
func Series(series []models.Series, format Format) ([]byte, error) {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		rows = append(rows, []string{
			strconv.Itoa(s.ID), s.Name, s.FirstAirDate, formatRating(s.VoteAverage),
		})
	}
	return render(seriesHeaders, rows, format)
}

// Library renders a tracking list in the requested format.
func Library(refs []models.LibraryRef, format Format) ([]byte, error) {
	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []string{strconv.Itoa(ref.ID), string(ref.Type)})
	}
	return render(libraryHeaders, rows, format)
}

// Users renders the admin user listing in the requested format.
func Users(users []models.User, format Format) ([]byte, error) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.Itoa(u.ID), u.Username, u.Email})
	}
	return render(userHeaders, rows, format)
}

// Statistics renders the per-user counters as a two-column table.
func Statistics(stats *models.Statistics, format Format) ([]byte, error) {
	rows := [][]string{
		{"Favorite movies", strconv.Itoa(stats.FavoriteMovies)},
		{"Favorite series", strconv.Itoa(stats.FavoriteSeries)},
		{"Pending movies", strconv.Itoa(stats.PendingMovies)},
		{"Pending series", strconv.Itoa(stats.PendingSeries)},
		{"Viewed movies", strconv.Itoa(stats.ViewedMovies)},
		{"Viewed series", strconv.Itoa(stats.ViewedSeries)},
	}
	return render(statsHeaders, rows, format)
}

var (
	movieHeaders   = []string{"ID", "Title", "Release Date", "Rating"}
	seriesHeaders  = []string{"ID", "Name", "First Air Date", "Rating"}
	libraryHeaders = []string{"ID", "Type"}
	userHeaders    = []string{"ID", "Username", "Email"}
	statsHeaders   = []string{"Counter", "Value"}
)

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func render(headers []string, rows [][]string, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return renderCSV(headers, rows)
	case FormatMarkdown:
		return renderMarkdown(headers, rows), nil
	case FormatTable, "":
		return renderTable(headers, rows), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

func renderCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func renderMarkdown(headers []string, rows [][]string) []byte {
	var buf bytes.Buffer

	for i, h := range headers {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(h)
	}
	buf.WriteString("\n")

	for i := range headers {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString("---")
	}
	buf.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				buf.WriteString(" | ")
			}
			buf.WriteString(cell)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

func renderTable(headers []string, rows [][]string) []byte {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var buf bytes.Buffer
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				buf.WriteString("  ")
			}
			buf.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		buf.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	return buf.Bytes()
}
