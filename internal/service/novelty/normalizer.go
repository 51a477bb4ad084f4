package novelty

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
)

const dateLayout = "2006-01-02"

// durationTextPattern extracts the leading day count from incapacity
// duration free text like "3 días" or "15 dias calendario".
var durationTextPattern = regexp.MustCompile(`(\d+)`)

// Normalize turns one raw observation into a blocking interval. Which
// raw fields are consulted depends on the category; a missing end date
// is inferred through the category's fallback chain, bottoming out at
// the start date itself. Returns false when the observation carries no
// usable start date.
func Normalize(obs novelty.Observation) (novelty.BlockingInterval, bool, error) {
	var start, end time.Time
	var windows []novelty.TimeWindow
	var ok bool

	d := obs.Detail
	switch obs.Category {
	case novelty.CategoryVacaciones:
		start, ok = parseDatePtr(d.FechaInicioVacaciones)
		if !ok {
			return novelty.BlockingInterval{}, false, nil
		}
		if end, ok = parseDatePtr(d.FechaFinVacaciones); !ok {
			if regreso, regresoOK := parseDatePtr(d.FechaRegresoVacaciones); regresoOK {
				end = regreso.AddDate(0, 0, -1)
			} else {
				end = start
			}
		}

	case novelty.CategoryIncapacidades:
		start, ok = parseDatePtr(d.FechaInicioIncapacidad)
		if !ok {
			return novelty.BlockingInterval{}, false, nil
		}
		if end, ok = parseDatePtr(d.FechaFinIncapacidad); !ok {
			if days, daysOK := parseDurationText(d.DiasIncapacidad); daysOK && days > 0 {
				end = start.AddDate(0, 0, days-1)
			} else {
				end = start
			}
		}

	case novelty.CategoryLicencias:
		start, ok = parseDatePtr(d.FechaInicioLicencia)
		if !ok {
			return novelty.BlockingInterval{}, false, nil
		}
		if end, ok = parseDatePtr(d.FechaFinLicencia); !ok {
			if d.DiasLicencia != nil && *d.DiasLicencia > 0 {
				end = start.AddDate(0, 0, *d.DiasLicencia-1)
			} else {
				end = start
			}
		}

	case novelty.CategoryPermisos:
		start, ok = parseDatePtr(d.FechaPermiso)
		if !ok {
			return novelty.BlockingInterval{}, false, nil
		}
		if end, ok = parseDatePtr(d.FechaFinPermiso); !ok {
			end = start
		}

	case novelty.CategoryEstudio:
		var err error
		start, end, windows, err = normalizeStudy(d)
		if err != nil {
			return novelty.BlockingInterval{}, false, err
		}
		if start.IsZero() {
			return novelty.BlockingInterval{}, false, nil
		}

	case novelty.CategoryDiaFamilia:
		start, ok = parseDatePtr(d.FechaDiaFamilia)
		if !ok {
			return novelty.BlockingInterval{}, false, nil
		}
		end = start

	default:
		return novelty.BlockingInterval{}, false, fmt.Errorf("%w: %q", novelty.ErrUnknownCategory, obs.Category)
	}

	if end.Before(start) {
		end = start
	}

	return novelty.BlockingInterval{
		ObservationID: obs.ID,
		Category:      obs.Category,
		Note:          obs.Note,
		Start:         start,
		End:           end,
		Windows:       windows,
	}, true, nil
}

// normalizeStudy prefers the explicit dated window list, spanning the
// min and max listed dates. Without one it falls back to the plain
// date-range fields and blocks no sub-windows.
func normalizeStudy(d novelty.Detail) (time.Time, time.Time, []novelty.TimeWindow, error) {
	if len(d.DetalleEstudio) > 0 {
		var start, end time.Time
		windows := make([]novelty.TimeWindow, 0, len(d.DetalleEstudio))
		for _, entry := range d.DetalleEstudio {
			date, err := time.Parse(dateLayout, entry.Fecha)
			if err != nil {
				return time.Time{}, time.Time{}, nil, fmt.Errorf("invalid study entry date %q: %w", entry.Fecha, err)
			}
			from, err := parseClock(entry.HoraInicio)
			if err != nil {
				return time.Time{}, time.Time{}, nil, err
			}
			to, err := parseClock(entry.HoraFin)
			if err != nil {
				return time.Time{}, time.Time{}, nil, err
			}
			if to < from {
				from, to = to, from
			}
			windows = append(windows, novelty.TimeWindow{Date: date, StartMinute: from, EndMinute: to})
			if start.IsZero() || date.Before(start) {
				start = date
			}
			if date.After(end) {
				end = date
			}
		}
		return start, end, windows, nil
	}

	start, ok := parseDatePtr(d.FechaInicioEstudio)
	if !ok {
		return time.Time{}, time.Time{}, nil, nil
	}
	end, ok := parseDatePtr(d.FechaFinEstudio)
	if !ok {
		end = start
	}
	return start, end, nil, nil
}

// NormalizeAll maps a raw observation list to its sorted interval list.
// Observations with no usable dates are skipped, not errors: historic
// records are frequently incomplete.
func NormalizeAll(observations []novelty.Observation) ([]novelty.BlockingInterval, error) {
	var intervals []novelty.BlockingInterval
	for _, obs := range observations {
		interval, ok, err := Normalize(obs)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		intervals = append(intervals, interval)
	}
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
	return intervals, nil
}

func parseDatePtr(value *string) (time.Time, bool) {
	if value == nil || *value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func parseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func parseDurationText(value *string) (int, bool) {
	if value == nil {
		return 0, false
	}
	match := durationTextPattern.FindString(*value)
	if match == "" {
		return 0, false
	}
	days, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return days, true
}
