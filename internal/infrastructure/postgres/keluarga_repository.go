package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

var _ repository.KeluargaRepository = (*KeluargaRepo)(nil)

// KeluargaRepo adapter KeluargaRepository di atas PostgreSQL.
type KeluargaRepo struct {
	db querier
}

// NewKeluargaRepository membangun adapter anggota keluarga.
func NewKeluargaRepository(db querier) *KeluargaRepo {
	return &KeluargaRepo{db: db}
}

// Create menyimpan anggota keluarga baru.
func (r *KeluargaRepo) Create(k *entity.Keluarga) error {
	query := `
		INSERT INTO keluarga (id, employee_id, hubungan, nama, tanggal_lahir, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		k.ID, k.EmployeeID, k.Hubungan, k.Nama, k.TanggalLahir, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert keluarga: %w", err)
	}
	return nil
}

// GetByIDAndEmployee nil, nil bila id tidak ada atau bukan milik employee tsb.
func (r *KeluargaRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Keluarga, error) {
	query := `
		SELECT id, employee_id, hubungan, nama, tanggal_lahir, created_at, updated_at
		FROM keluarga WHERE id = $1 AND employee_id = $2`
	var k entity.Keluarga
	err := r.db.QueryRow(context.Background(), query, id, employeeID).Scan(
		&k.ID, &k.EmployeeID, &k.Hubungan, &k.Nama, &k.TanggalLahir, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get keluarga: %w", err)
	}
	return &k, nil
}

// ListByEmployee urut sesuai waktu dibuat (terlama dulu).
func (r *KeluargaRepo) ListByEmployee(employeeID string) ([]*entity.Keluarga, error) {
	query := `
		SELECT id, employee_id, hubungan, nama, tanggal_lahir, created_at, updated_at
		FROM keluarga WHERE employee_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list keluarga: %w", err)
	}
	defer rows.Close()
	var list []*entity.Keluarga
	for rows.Next() {
		var k entity.Keluarga
		if err := rows.Scan(&k.ID, &k.EmployeeID, &k.Hubungan, &k.Nama, &k.TanggalLahir, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan keluarga: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// Update menimpa kolom mutable.
func (r *KeluargaRepo) Update(k *entity.Keluarga) error {
	query := `
		UPDATE keluarga SET hubungan = $2, nama = $3, tanggal_lahir = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		k.ID, k.Hubungan, k.Nama, k.TanggalLahir, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update keluarga: %w", err)
	}
	return nil
}

// Delete menghapus satu anggota keluarga.
func (r *KeluargaRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM keluarga WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete keluarga: %w", err)
	}
	return nil
}

// DeleteByEmployee dipakai cascade delete karyawan.
func (r *KeluargaRepo) DeleteByEmployee(employeeID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM keluarga WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("delete keluarga by employee: %w", err)
	}
	return nil
}
