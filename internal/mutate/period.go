package mutate

import (
        "fmt"
        "math"
        "regexp"
        "strconv"
        "time"
)

const (
        day  = 24 * time.Hour
        week = 7 * day
)

var (
        periodPattern = regexp.MustCompile(`^\s*([+-]?\d+)\s*([A-Za-z]+)\s*$`)

        // Units are case-sensitive: "m" is a minute, "M" a month. Month,
        // quarter and year are fixed multiples of a week, not calendar math.
        periodUnits = map[string]time.Duration{
                "s":       time.Second,
                "sec":     time.Second,
                "seconds": time.Second,
                "m":       time.Minute,
                "min":     time.Minute,
                "minutes": time.Minute,
                "h":       time.Hour,
                "hours":   time.Hour,
                "d":       day,
                "days":    day,
                "w":       week,
                "weeks":   week,
                "M":       4 * week,
                "months":  4 * week,
                "q":       12 * week,
                "y":       52 * week,
                "years":   52 * week,
        }
)

// ParsePeriod parses a snooze period such as "3d", "-1h" or "2M".
func ParsePeriod(spec string) (time.Duration, error) {
        m := periodPattern.FindStringSubmatch(spec)
        if len(m) != 3 {
                return 0, fmt.Errorf("invalid snooze period %q", spec)
        }
        n, err := strconv.ParseInt(m[1], 10, 64)
        if err != nil {
                return 0, fmt.Errorf("invalid snooze multiplier %q: %w", m[1], err)
        }
        unit, ok := periodUnits[m[2]]
        if !ok {
                return 0, UnknownUnitError{Unit: m[2]}
        }
        if n > math.MaxInt64/int64(unit) || n < math.MinInt64/int64(unit) {
                return 0, fmt.Errorf("snooze period %q overflows", spec)
        }
        return time.Duration(n) * unit, nil
}
