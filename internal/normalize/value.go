package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var reAmount = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ParseAmount parses a comma-free integer or decimal token. Anything else
// (thousands separators, currency symbols, signs) fails the candidate that
// carried it.
func ParseAmount(tok string) (decimal.Decimal, error) {
	tok = strings.TrimSpace(tok)
	if !reAmount.MatchString(tok) {
		return decimal.Decimal{}, fmt.Errorf("malformed amount %q", tok)
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed amount %q: %w", tok, err)
	}
	return d, nil
}

var (
	reDayFirst  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	reYearFirst = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
	reMonthYear = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
)

// ParseDate parses a date token to midnight UTC. Accepted forms are
// DD/MM/YYYY, DD-MM-YYYY, YYYY-MM-DD, YYYY/MM/DD and MM/YYYY; the last is
// normalized to the first day of the month.
func ParseDate(tok string) (time.Time, error) {
	tok = strings.TrimSpace(tok)

	if m := reDayFirst.FindStringSubmatch(tok); m != nil {
		return calendarDate(m[3], m[2], m[1])
	}
	if m := reYearFirst.FindStringSubmatch(tok); m != nil {
		return calendarDate(m[1], m[2], m[3])
	}
	if m := reMonthYear.FindStringSubmatch(tok); m != nil {
		return calendarDate(m[2], m[1], "1")
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", tok)
}

func calendarDate(year, month, day string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < 1900 || y > 2100 || mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("date out of range %04d-%02d-%02d", y, mo, d)
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	// reject rollovers like 31/02
	if t.Day() != d || t.Month() != time.Month(mo) {
		return time.Time{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", y, mo, d)
	}
	return t, nil
}
