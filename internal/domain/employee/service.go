package employee

import "context"

type Service interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByCedula(ctx context.Context, cedula string) (EmployeeResponse, error)
}
