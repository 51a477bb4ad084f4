package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// CombinedWeeklyCeilingHours is the legal 44h plus the 12h payable
// extra ceiling. Week totals beyond it accrue to the hours bank.
var CombinedWeeklyCeilingHours = decimal.NewFromInt(56)

type Status string

const (
	StatusPending  Status = "pendiente"
	StatusPartial  Status = "parcial"
	StatusApplied  Status = "aplicado"
	StatusAnnulled Status = "anulado"
)

// Application records hours of an entry consumed by a later week.
type Application struct {
	WeekStart time.Time       `json:"semana_inicio"`
	WeekEnd   time.Time       `json:"semana_fin"`
	Hours     decimal.Decimal `json:"horas"`
	AppliedAt time.Time       `json:"aplicado_en"`
}

// Entry is one ledger row of compensable overtime owed to an employee
// for one week. Entries are never physically deleted, only annulled.
// Invariant: PendingHours never exceeds ExcessHours; status moves
// pendiente -> parcial -> aplicado, or any -> anulado (terminal).
type Entry struct {
	ID         string
	EmployeeID string
	WeekStart  time.Time
	WeekEnd    time.Time

	ExcessHours  decimal.Decimal
	PendingHours decimal.Decimal
	Status       Status

	Applications []Application

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekTotals is the finalized-week input the reconciler consumes. It
// deliberately carries only what excess derivation needs.
type WeekTotals struct {
	EmployeeID string
	WeekStart  time.Time
	WeekEnd    time.Time
	TotalHours decimal.Decimal
}
