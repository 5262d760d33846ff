// Package timefmt renders post timestamps in Brazilian Portuguese.
package timefmt

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
)

const (
	// absoluteLayout renders as "5 de maio às 20:00h".
	absoluteLayout = "2 de January às 15:04h"

	isoLayout = "2006-01-02T15:04:05.000Z07:00"

	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// relativeMagnitudes cover distances, rounded to the minute, below two
// months. D is the exclusive upper bound of a bucket and %d receives the
// distance in DivBy units, rounded. The first %s receives "há" or "em".
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "%s menos de um minuto", DivBy: time.Minute},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: time.Minute},
	{D: 45 * time.Minute, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 90 * time.Minute, Format: "%s cerca de 1 hora", DivBy: time.Hour},
	{D: day, Format: "%s cerca de %d horas", DivBy: time.Hour},
	{D: 42 * time.Hour, Format: "%s 1 dia", DivBy: day},
	{D: month, Format: "%s %d dias", DivBy: day},
	{D: 45 * day, Format: "%s cerca de 1 mês", DivBy: month},
	{D: 2 * month, Format: "%s cerca de 2 meses", DivBy: month},
}

type Formatter struct {
	location *time.Location
	now      func() time.Time
}

// New returns a Formatter rendering times in location. A nil now uses the
// wall clock.
func New(location *time.Location, now func() time.Time) *Formatter {
	if location == nil {
		location = time.UTC
	}

	if now == nil {
		now = time.Now
	}

	return &Formatter{
		location: location,
		now:      now,
	}
}

// Absolute returns the long form, e.g. "5 de maio às 20:00h".
func (f *Formatter) Absolute(t time.Time) string {
	return monday.Format(t.In(f.location), absoluteLayout, monday.LocalePtBR)
}

// Relative returns the distance to now, e.g. "há cerca de 2 horas".
func (f *Formatter) Relative(t time.Time) string {
	now := f.now()

	label := "há"
	from, to := t, now

	if t.After(now) {
		label = "em"
		from, to = now, t
	}

	// Whole seconds, rounded half up to the minute.
	distance := to.Sub(from).Truncate(time.Second).Round(time.Minute)

	mag, count := relativeMagnitude(distance, monthsBetween(from.In(f.location), to.In(f.location)))

	// With a single magnitude CustomRelTime only fills in the label and count.
	ref := now.Add(-time.Duration(count) * mag.DivBy)

	return humanize.CustomRelTime(ref, now, label, label, []humanize.RelTimeMagnitude{mag})
}

func relativeMagnitude(distance time.Duration, months int) (humanize.RelTimeMagnitude, int64) {
	if distance < 2*month {
		n := sort.Search(len(relativeMagnitudes), func(i int) bool {
			return relativeMagnitudes[i].D > distance
		})
		mag := relativeMagnitudes[n]

		return mag, int64((distance + mag.DivBy/2) / mag.DivBy)
	}

	if months < 12 {
		return humanize.RelTimeMagnitude{Format: "%s %d meses", DivBy: month}, int64((distance + month/2) / month)
	}

	years := months / 12

	switch {
	case months%12 < 3:
		return yearMagnitude("cerca de", years), 0
	case months%12 < 9:
		return yearMagnitude("mais de", years), 0
	default:
		return yearMagnitude("quase", years+1), 0
	}
}

// yearMagnitude carries the year count in its format, as multiples of a
// year overflow time.Duration past a few centuries.
func yearMagnitude(qualifier string, years int) humanize.RelTimeMagnitude {
	unit := "anos"
	if years == 1 {
		unit = "ano"
	}

	return humanize.RelTimeMagnitude{Format: fmt.Sprintf("%%s %s %d %s", qualifier, years, unit), DivBy: year}
}

// monthsBetween counts the whole calendar months from from to to.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())

	if months > 0 && from.AddDate(0, months, 0).After(to) {
		months--
	}

	return months
}

// ISO returns t in UTC with millisecond precision.
func (f *Formatter) ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
