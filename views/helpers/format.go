package helpers

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// FormatPrice formats cents as dollars (e.g., 1599 -> "$15.99")
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime formats a time.Time as "Jan 2, 2006 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// NullString returns the wrapped value or a default when null.
func NullString(s sql.NullString, defaultVal string) string {
	if s.Valid {
		return s.String
	}
	return defaultVal
}

// Stars renders a review rating as filled and empty star glyphs.
func Stars(rating int64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", int(rating)) + strings.Repeat("☆", int(5-rating))
}

// CardLast4 returns the last four digits of a stored card number.
func CardLast4(number string) string {
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}
