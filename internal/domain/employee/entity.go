package employee

import "time"

type Status string

const (
	StatusActive   Status = "activo"
	StatusInactive Status = "inactivo"
)

type Employee struct {
	ID        string
	Cedula    string
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
