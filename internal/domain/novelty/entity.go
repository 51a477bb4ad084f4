package novelty

import "time"

// Category identifies the kind of novedad. The values are the canonical
// labels used by the existing callers and stored in the database.
type Category string

const (
	CategoryIncapacidades Category = "Incapacidades"
	CategoryLicencias     Category = "Licencias"
	CategoryVacaciones    Category = "Vacaciones"
	CategoryPermisos      Category = "Permisos"
	CategoryEstudio       Category = "Estudio"
	CategoryDiaFamilia    Category = "Dia de la Familia"
)

var CategoryValues = []string{
	string(CategoryIncapacidades),
	string(CategoryLicencias),
	string(CategoryVacaciones),
	string(CategoryPermisos),
	string(CategoryEstudio),
	string(CategoryDiaFamilia),
}

// Observation is one raw novedad record as stored by the HR side.
// Category-specific fields live in Detail; the core only reads them.
type Observation struct {
	ID         string
	EmployeeID string
	Category   Category
	Note       string
	Detail     Detail
	CreatedAt  time.Time
}

// Detail is the category-specific raw payload (JSONB column). Field
// names are the wire contract with the existing HR frontend; which
// fields are consulted depends on Category.
type Detail struct {
	// Vacaciones
	FechaInicioVacaciones  *string `json:"fecha_inicio_vacaciones,omitempty"`
	FechaFinVacaciones     *string `json:"fecha_fin_vacaciones,omitempty"`
	FechaRegresoVacaciones *string `json:"fecha_regreso_vacaciones,omitempty"`

	// Incapacidades
	FechaInicioIncapacidad *string `json:"fecha_inicio_incapacidad,omitempty"`
	FechaFinIncapacidad    *string `json:"fecha_fin_incapacidad,omitempty"`
	DiasIncapacidad        *string `json:"dias_incapacidad,omitempty"` // free text, e.g. "3 días"

	// Licencias
	FechaInicioLicencia *string `json:"fecha_inicio_licencia,omitempty"`
	FechaFinLicencia    *string `json:"fecha_fin_licencia,omitempty"`
	DiasLicencia        *int    `json:"dias_licencia,omitempty"`

	// Permisos
	FechaPermiso    *string `json:"fecha_permiso,omitempty"`
	FechaFinPermiso *string `json:"fecha_fin_permiso,omitempty"`

	// Estudio
	FechaInicioEstudio *string      `json:"fecha_inicio_estudio,omitempty"`
	FechaFinEstudio    *string      `json:"fecha_fin_estudio,omitempty"`
	DetalleEstudio     []StudyEntry `json:"detalle_estudio,omitempty"`

	// Dia de la Familia
	FechaDiaFamilia *string `json:"fecha_dia_familia,omitempty"`
}

// StudyEntry is one dated time window inside an Estudio novedad.
type StudyEntry struct {
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// TimeWindow is a parsed study window on a specific date, expressed in
// minutes since midnight.
type TimeWindow struct {
	Date        time.Time
	StartMinute int
	EndMinute   int
}

// BlockingInterval is a normalized novedad restricting scheduling over
// an inclusive date range. It is derived on every read and has no
// identity beyond its source observation.
type BlockingInterval struct {
	ObservationID string
	Category      Category
	Note          string
	Start         time.Time
	End           time.Time
	Windows       []TimeWindow // Estudio only
}

// FullBlock reports whether the interval excludes covered dates from
// scheduling entirely. Estudio intervals only remove sub-windows.
func (b BlockingInterval) FullBlock() bool {
	return b.Category != CategoryEstudio
}

// Covers reports whether the given date falls inside [Start, End].
func (b BlockingInterval) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(b.Start) && !d.After(b.End)
}
