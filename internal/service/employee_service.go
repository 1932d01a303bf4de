package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"employees-api/internal/apperror"
	"employees-api/internal/models"
)

const employeeNotFound = "Employee not found"

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	result := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employeeToDTO(employee))
	}
	return result, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID int64) (EmployeeDTO, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).Take(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeDTO{}, apperror.New(apperror.CodeNotFound, employeeNotFound)
		}
		return EmployeeDTO{}, fmt.Errorf("load employee: %w", err)
	}
	return employeeToDTO(employee), nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, input EmployeeInput) (int64, error) {
	if err := validateInput(input); err != nil {
		return 0, err
	}

	employee := models.Employee{
		Name:       input.Name,
		Email:      input.Email,
		Department: input.Department,
		Position:   input.Position,
		Salary:     *input.Salary,
		HireDate:   input.HireDate,
		Phone:      input.Phone,
	}

	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return 0, mapDatabaseError(err)
	}

	return employee.ID, nil
}

// UpdateEmployee replaces every mutable field of the employee. Omitted optional
// fields are cleared.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID int64, input EmployeeInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]interface{}{
			"name":       input.Name,
			"email":      input.Email,
			"department": input.Department,
			"position":   input.Position,
			"salary":     *input.Salary,
			"hire_date":  input.HireDate,
			"phone":      input.Phone,
		})
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, employeeNotFound)
	}
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	result := s.db.WithContext(ctx).Delete(&models.Employee{}, employeeID)
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, employeeNotFound)
	}
	return nil
}

// Stats runs the count, average and per-department queries concurrently and
// returns nothing unless all three succeed.
func (s *EmployeeService) Stats(ctx context.Context) (StatsDTO, error) {
	var (
		total        int64
		average      float64
		byDepartment []DepartmentCount
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := s.db.WithContext(groupCtx).Model(&models.Employee{}).Count(&total).Error; err != nil {
			return fmt.Errorf("count employees: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		row := s.db.WithContext(groupCtx).
			Model(&models.Employee{}).
			Select("COALESCE(AVG(salary), 0)").
			Row()
		if err := row.Scan(&average); err != nil {
			return fmt.Errorf("average salary: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		if err := s.db.WithContext(groupCtx).
			Model(&models.Employee{}).
			Select("department, COUNT(*) AS count").
			Group("department").
			Order("department ASC").
			Scan(&byDepartment).Error; err != nil {
			return fmt.Errorf("count employees by department: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return StatsDTO{}, err
	}

	if byDepartment == nil {
		byDepartment = []DepartmentCount{}
	}

	return StatsDTO{
		TotalEmployees: total,
		AverageSalary:  average,
		ByDepartment:   byDepartment,
	}, nil
}

func employeeToDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		Position:   employee.Position,
		Salary:     employee.Salary,
		HireDate:   employee.HireDate,
		Phone:      employee.Phone,
		CreatedAt:  employee.CreatedAt,
	}
}
