// Package birth parses and validates the civil birth moment that seeds a
// chart. A Moment is immutable once built and always carries a UTC instant
// inside the supported calendar range.
package birth

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/papapumpkin/bodygraph/internal/fault"
)

// Supported calendar range (UTC, inclusive start, exclusive end). The
// simplified ephemeris series drift badly outside it.
const (
	MinYear = 1800
	MaxYear = 2199
)

const (
	dateLayout = "2006-01-02"
	maxOffset  = 14 * time.Hour
)

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// Request is the wire form of a birth moment, as accepted by the CLI, the
// HTTP API, batch files and inbox files.
type Request struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Date      string   `json:"date" yaml:"date" toml:"date"`
	Time      string   `json:"time" yaml:"time" toml:"time"`
	Timezone  string   `json:"timezone,omitempty" yaml:"timezone,omitempty" toml:"timezone,omitempty"`
	Location  string   `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty" toml:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty" toml:"longitude,omitempty"`
	MBTI      string   `json:"mbti,omitempty" yaml:"mbti,omitempty" toml:"mbti,omitempty"`
}

// Moment returns the validated Moment for r. An empty timezone falls back
// to defaultZone; an empty defaultZone means UTC.
func (r Request) Moment(defaultZone string) (Moment, error) {
	zone := r.Timezone
	if zone == "" {
		zone = defaultZone
	}
	m, err := Parse(r.Date, r.Time, zone)
	if err != nil {
		return Moment{}, err
	}
	m.Location = r.Location
	if r.Latitude != nil {
		if *r.Latitude < -90 || *r.Latitude > 90 {
			return Moment{}, &fault.ValidationError{Field: "latitude", Value: strconv.FormatFloat(*r.Latitude, 'f', -1, 64), Err: fault.ErrOutOfRange}
		}
		lat := *r.Latitude
		m.Latitude = &lat
	}
	if r.Longitude != nil {
		if *r.Longitude < -180 || *r.Longitude > 180 {
			return Moment{}, &fault.ValidationError{Field: "longitude", Value: strconv.FormatFloat(*r.Longitude, 'f', -1, 64), Err: fault.ErrOutOfRange}
		}
		lon := *r.Longitude
		m.Longitude = &lon
	}
	return m, nil
}

// Moment is a validated birth instant. Coordinates are carried for callers
// that need them; the ephemeris is location independent and ignores them.
type Moment struct {
	Date      string // civil date as given, YYYY-MM-DD
	Clock     string // civil time as given, HH:MM[:SS]
	Zone      string // timezone label as resolved
	Local     time.Time
	UTC       time.Time
	Location  string
	Latitude  *float64
	Longitude *float64
}

// Parse validates a civil date, time and zone and resolves them to a UTC
// instant. zone accepts "", "UTC", "Z", "±HH:MM", "±HHMM" or an IANA name.
func Parse(date, clock, zone string) (Moment, error) {
	day, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return Moment{}, &fault.ValidationError{Field: "date", Value: date, Err: fault.ErrMalformedDate}
	}
	h, mi, s, err := parseClock(clock)
	if err != nil {
		return Moment{}, err
	}
	loc, label, err := resolveZone(zone)
	if err != nil {
		return Moment{}, err
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), h, mi, s, 0, loc)
	utc := local.UTC()
	if err := CheckInstant(utc); err != nil {
		return Moment{}, err
	}
	return Moment{
		Date:  day.Format(dateLayout),
		Clock: fmt.Sprintf("%02d:%02d:%02d", h, mi, s),
		Zone:  label,
		Local: local,
		UTC:   utc,
	}, nil
}

// FromTime builds a Moment from an absolute instant.
func FromTime(t time.Time) (Moment, error) {
	utc := t.UTC()
	if err := CheckInstant(utc); err != nil {
		return Moment{}, err
	}
	return Moment{
		Date:  t.Format(dateLayout),
		Clock: t.Format("15:04:05"),
		Zone:  t.Location().String(),
		Local: t,
		UTC:   utc,
	}, nil
}

// CheckInstant reports a *fault.ValidationError when t falls outside
// [MinYear-01-01, MaxYear+1-01-01) UTC.
func CheckInstant(t time.Time) error {
	lo := time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(MaxYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	if t.Before(lo) || !t.Before(hi) {
		return &fault.ValidationError{Field: "instant", Value: t.UTC().Format(time.RFC3339), Err: fault.ErrOutOfRange}
	}
	return nil
}

func parseClock(clock string) (h, m, s int, err error) {
	bad := &fault.ValidationError{Field: "time", Value: clock, Err: fault.ErrMalformedTime}
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, bad
	}
	vals := make([]int, 3)
	limits := []int{23, 59, 59}
	for i, p := range parts {
		if len(p) != 2 {
			return 0, 0, 0, bad
		}
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 || n > limits[i] {
			return 0, 0, 0, bad
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], nil
}

func resolveZone(zone string) (*time.Location, string, error) {
	zone = strings.TrimSpace(zone)
	switch strings.ToUpper(zone) {
	case "", "UTC", "Z", "GMT":
		return time.UTC, "UTC", nil
	}

	if m := offsetPattern.FindStringSubmatch(zone); m != nil {
		hh, _ := strconv.Atoi(m[2])
		mm, _ := strconv.Atoi(m[3])
		off := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute
		if mm > 59 || off > maxOffset {
			return nil, "", &fault.ValidationError{Field: "timezone", Value: zone, Err: fault.ErrUnknownZone}
		}
		if m[1] == "-" {
			off = -off
		}
		label := fmt.Sprintf("%s%s:%s", m[1], m[2], m[3])
		return time.FixedZone(label, int(off/time.Second)), label, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, "", &fault.ValidationError{Field: "timezone", Value: zone, Err: fault.ErrUnknownZone}
	}
	return loc, loc.String(), nil
}
