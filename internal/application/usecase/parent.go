package usecase

import (
	"fmt"

	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/access"
	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

// visibleEmployee memuat Employee induk untuk operasi anak. Anak tidak punya
// kepemilikan sendiri: induk yang tidak ada dan induk yang tidak boleh
// diakses sama-sama menghasilkan ErrNotFound.
func visibleEmployee(
	repo repository.EmployeeRepository,
	policy access.Policy,
	callerID, employeeID string,
) (*entity.Employee, error) {
	e, err := repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil || !policy.Allows(e, callerID) {
		return nil, fmt.Errorf("%w: Karyawan tidak ditemukan", domain.ErrNotFound)
	}
	return e, nil
}
