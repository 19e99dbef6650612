package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, user_id, created_by_id, nik, nama_lengkap, tempat_lahir,
	tanggal_lahir, jenis_kelamin, alamat, foto, created_at, updated_at`

// EmployeeRepo adapter EmployeeRepository di atas PostgreSQL.
type EmployeeRepo struct {
	db querier
}

// NewEmployeeRepository membangun adapter persistensi karyawan.
func NewEmployeeRepository(db querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// Create menyimpan karyawan baru; uq_employees_nik -> ErrNIKAlreadyExists.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.UserID, e.CreatedByID, e.NIK, e.NamaLengkap, e.TempatLahir,
		e.TanggalLahir, e.JenisKelamin, e.Alamat, e.Foto, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) != "" {
			return domain.ErrNIKAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID mengembalikan nil, nil bila tidak ada.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.CreatedByID, &e.NIK, &e.NamaLengkap, &e.TempatLahir,
		&e.TanggalLahir, &e.JenisKelamin, &e.Alamat, &e.Foto, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List semua karyawan, terbaru dulu (varian open).
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

// ListByOwnerOrCreator memfilter disjungsi kepemilikan di query, bukan di klien.
func (r *EmployeeRepo) ListByOwnerOrCreator(callerID string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees WHERE user_id = $1 OR created_by_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(query, callerID, limit, offset)
}

func (r *EmployeeRepo) scanList(query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CreatedByID, &e.NIK, &e.NamaLengkap, &e.TempatLahir,
			&e.TanggalLahir, &e.JenisKelamin, &e.Alamat, &e.Foto, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update menimpa kolom mutable; ErrNotFound bila row hilang di antara fetch
// dan persist (race dengan delete lain).
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET user_id = $2, created_by_id = $3, nik = $4, nama_lengkap = $5,
			tempat_lahir = $6, tanggal_lahir = $7, jenis_kelamin = $8, alamat = $9,
			foto = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query,
		e.ID, e.UserID, e.CreatedByID, e.NIK, e.NamaLengkap, e.TempatLahir,
		e.TanggalLahir, e.JenisKelamin, e.Alamat, e.Foto, e.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) != "" {
			return domain.ErrNIKAlreadyExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete menghapus karyawan; ErrNotFound bila tidak ada.
func (r *EmployeeRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
