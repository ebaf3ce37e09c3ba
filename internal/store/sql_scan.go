package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timestampScanner scans a timestamp column into a time.Time. Besides
// time.Time it accepts the textual forms SQLite returns when a column's
// declared type is not visible to the driver (e.g. in RETURNING clauses).
type timestampScanner struct {
	dst *time.Time
}

func scanTimestamp(dst *time.Time) *timestampScanner {
	return &timestampScanner{dst: dst}
}

func (s *timestampScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = time.Time{}
		return nil
	case time.Time:
		*s.dst = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s *timestampScanner) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*s.dst = t
			return nil
		}
	}

	return fmt.Errorf("unparseable timestamp %q", value)
}
