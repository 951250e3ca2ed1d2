// Package export renders request records as CSV for downstream tools.
//
// The format is deliberately pinned: a fixed header, minimal RFC 4180
// quoting (a field is quoted if and only if it contains a comma,
// double quote, or line break), dates as YYYY-MM-DD, and timestamps in
// a fixed-width round-trippable form with a seven-digit fraction and
// timezone offset. Consumers diff exports byte-for-byte, so the stdlib
// csv writer is not used here: its quoting decisions and line
// terminators differ from the pinned format.
package export

import (
	"os"
	"strings"
	"time"

	"github.com/example/requesthub/internal/models"
)

// Header is the first line of every export, in column order.
const Header = "id,scholar_name,request_type,priority,status,needed_by,owner,channel,notes,created_at,updated_at"

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.0000000-07:00"
)

// Encode serializes records in input order, one line per record,
// terminated with \n. It is pure; persistence happens in WriteFile.
func Encode(records []models.ResourceRequest) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	for _, rec := range records {
		fields := []string{
			rec.ID.String(),
			escape(rec.ScholarName),
			escape(rec.RequestType),
			string(rec.Priority),
			string(rec.Status),
			formatDate(rec.NeededBy),
			escapeOptional(rec.Owner),
			escapeOptional(rec.Channel),
			escapeOptional(rec.Notes),
			rec.CreatedAt.UTC().Format(timestampLayout),
			rec.UpdatedAt.UTC().Format(timestampLayout),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile persists the encoded records to path and reports how many
// records were written.
func WriteFile(path string, records []models.ResourceRequest) (int, error) {
	if err := os.WriteFile(path, []byte(Encode(records)), 0o644); err != nil {
		return 0, err
	}
	return len(records), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func escapeOptional(value *string) string {
	if value == nil {
		return ""
	}
	return escape(*value)
}

// escape quotes a field only when the raw value contains a comma,
// quote, or line break; internal quotes are doubled. Empty values are
// emitted bare.
func escape(value string) string {
	if value == "" {
		return ""
	}
	if strings.ContainsAny(value, ",\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
