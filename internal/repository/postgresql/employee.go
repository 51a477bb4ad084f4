package postgresql

import (
	"context"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/employee"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, cedula, nombre, estado, created_at, updated_at
		FROM empleados
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Cedula, &emp.Name, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByCedula implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCedula(ctx context.Context, cedula string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, cedula, nombre, estado, created_at, updated_at
		FROM empleados
		WHERE cedula = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, cedula).Scan(
		&emp.ID, &emp.Cedula, &emp.Name, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}
