package service

import (
	"context"
	"time"
)

// EmployeeInput carries the mutable employee fields for create and update.
// Salary is a pointer so that an explicit 0 is distinguishable from an absent value.
type EmployeeInput struct {
	Name       string   `validate:"required"`
	Email      string   `validate:"required"`
	Department string   `validate:"required"`
	Position   string   `validate:"required"`
	Salary     *float64 `validate:"required"`
	HireDate   string   `validate:"required"`
	Phone      *string
}

type EmployeeDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     float64   `json:"salary"`
	HireDate   string    `json:"hire_date"`
	Phone      *string   `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type StatsDTO struct {
	TotalEmployees int64             `json:"totalEmployees"`
	AverageSalary  float64           `json:"averageSalary"`
	ByDepartment   []DepartmentCount `json:"byDepartment"`
}

type Manager interface {
	ListEmployees(ctx context.Context) ([]EmployeeDTO, error)
	GetEmployee(ctx context.Context, employeeID int64) (EmployeeDTO, error)
	CreateEmployee(ctx context.Context, input EmployeeInput) (int64, error)
	UpdateEmployee(ctx context.Context, employeeID int64, input EmployeeInput) error
	DeleteEmployee(ctx context.Context, employeeID int64) error
	Stats(ctx context.Context) (StatsDTO, error)
}
