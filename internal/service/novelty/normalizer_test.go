package novelty

import (
	"testing"
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func day(d string) time.Time {
	parsed, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestNormalize_VacacionesExplicitEnd(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		ID:       "obs-1",
		Category: novelty.CategoryVacaciones,
		Detail: novelty.Detail{
			FechaInicioVacaciones: strPtr("2026-02-02"),
			FechaFinVacaciones:    strPtr("2026-02-13"),
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2026-02-02"), interval.Start)
	assert.Equal(t, day("2026-02-13"), interval.End)
	assert.True(t, interval.FullBlock())
}

func TestNormalize_VacacionesRegresoMinusOne(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryVacaciones,
		Detail: novelty.Detail{
			FechaInicioVacaciones:  strPtr("2026-02-02"),
			FechaRegresoVacaciones: strPtr("2026-02-16"),
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2026-02-15"), interval.End)
}

func TestNormalize_IncapacidadDurationText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		end  string
	}{
		{"3 días", "2026-03-04"},
		{"15 dias calendario", "2026-03-16"},
		{"1", "2026-03-02"},
	}
	for _, tc := range cases {
		interval, ok, err := Normalize(novelty.Observation{
			Category: novelty.CategoryIncapacidades,
			Detail: novelty.Detail{
				FechaInicioIncapacidad: strPtr("2026-03-02"),
				DiasIncapacidad:        strPtr(tc.text),
			},
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, day(tc.end), interval.End, "text %q", tc.text)
	}
}

func TestNormalize_IncapacidadUnparseableTextFallsBackToStart(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryIncapacidades,
		Detail: novelty.Detail{
			FechaInicioIncapacidad: strPtr("2026-03-02"),
			DiasIncapacidad:        strPtr("indefinida"),
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2026-03-02"), interval.End)
}

func TestNormalize_LicenciaDayCount(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryLicencias,
		Detail: novelty.Detail{
			FechaInicioLicencia: strPtr("2026-04-06"),
			DiasLicencia:        intPtr(5),
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2026-04-10"), interval.End)
}

func TestNormalize_PermisoSingleDay(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryPermisos,
		Detail:   novelty.Detail{FechaPermiso: strPtr("2026-05-01")},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, interval.Start, interval.End)
}

func TestNormalize_DiaFamilia(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryDiaFamilia,
		Detail:   novelty.Detail{FechaDiaFamilia: strPtr("2026-06-19")},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2026-06-19"), interval.Start)
	assert.Equal(t, interval.Start, interval.End)
	assert.True(t, interval.FullBlock())
}

func TestNormalize_StudyWindowList(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryEstudio,
		Detail: novelty.Detail{
			DetalleEstudio: []novelty.StudyEntry{
				{Fecha: "2026-07-08", HoraInicio: "16:00", HoraFin: "18:00"},
				{Fecha: "2026-07-06", HoraInicio: "07:00", HoraFin: "09:00"},
			},
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2026-07-06"), interval.Start)
	assert.Equal(t, day("2026-07-08"), interval.End)
	assert.False(t, interval.FullBlock())
	require.Len(t, interval.Windows, 2)
	assert.Equal(t, 16*60, interval.Windows[0].StartMinute)
	assert.Equal(t, 18*60, interval.Windows[0].EndMinute)
}

func TestNormalize_StudyPlainRangeWithoutWindows(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryEstudio,
		Detail: novelty.Detail{
			FechaInicioEstudio: strPtr("2026-07-06"),
			FechaFinEstudio:    strPtr("2026-07-10"),
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, interval.Windows)
	assert.Equal(t, day("2026-07-10"), interval.End)
}

func TestNormalize_MissingStartSkipped(t *testing.T) {
	t.Parallel()

	_, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryVacaciones,
		Detail:   novelty.Detail{FechaFinVacaciones: strPtr("2026-02-13")},
	})

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNormalize_EndBeforeStartClamped(t *testing.T) {
	t.Parallel()

	interval, ok, err := Normalize(novelty.Observation{
		Category: novelty.CategoryVacaciones,
		Detail: novelty.Detail{
			FechaInicioVacaciones: strPtr("2026-02-10"),
			FechaFinVacaciones:    strPtr("2026-02-05"),
		},
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, interval.Start, interval.End)
}

func TestNormalize_UnknownCategory(t *testing.T) {
	t.Parallel()

	_, _, err := Normalize(novelty.Observation{Category: novelty.Category("Otra")})
	assert.ErrorIs(t, err, novelty.ErrUnknownCategory)
}

func TestNormalizeAll_SortsAndSkips(t *testing.T) {
	t.Parallel()

	intervals, err := NormalizeAll([]novelty.Observation{
		{
			ID:       "late",
			Category: novelty.CategoryPermisos,
			Detail:   novelty.Detail{FechaPermiso: strPtr("2026-05-20")},
		},
		{
			ID:       "empty",
			Category: novelty.CategoryPermisos,
			Detail:   novelty.Detail{},
		},
		{
			ID:       "early",
			Category: novelty.CategoryVacaciones,
			Detail: novelty.Detail{
				FechaInicioVacaciones: strPtr("2026-05-04"),
				FechaFinVacaciones:    strPtr("2026-05-08"),
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.Equal(t, "early", intervals[0].ObservationID)
	assert.Equal(t, "late", intervals[1].ObservationID)
}

// Normalization is derived on every read; running it twice over the
// same raw input must give identical intervals.
func TestNormalizeAll_Idempotent(t *testing.T) {
	t.Parallel()

	observations := []novelty.Observation{
		{
			ID:       "obs-1",
			Category: novelty.CategoryIncapacidades,
			Detail: novelty.Detail{
				FechaInicioIncapacidad: strPtr("2026-03-02"),
				DiasIncapacidad:        strPtr("3 días"),
			},
		},
		{
			ID:       "obs-2",
			Category: novelty.CategoryEstudio,
			Detail: novelty.Detail{
				DetalleEstudio: []novelty.StudyEntry{
					{Fecha: "2026-03-04", HoraInicio: "16:00", HoraFin: "18:00"},
				},
			},
		},
	}

	first, err := NormalizeAll(observations)
	require.NoError(t, err)
	second, err := NormalizeAll(observations)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
