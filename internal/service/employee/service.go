package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	repo employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{repo: repo}
}

// GetByID implements employee.Service.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapToResponse(emp), nil
}

// GetByCedula implements employee.Service.
func (s *EmployeeServiceImpl) GetByCedula(ctx context.Context, cedula string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByCedula(ctx, cedula)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapToResponse(emp), nil
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:     emp.ID,
		Cedula: emp.Cedula,
		Nombre: emp.Name,
		Estado: string(emp.Status),
	}
}
