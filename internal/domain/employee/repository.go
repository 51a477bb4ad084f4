package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCedula(ctx context.Context, cedula string) (Employee, error)
}
