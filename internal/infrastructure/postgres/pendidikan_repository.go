package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

var _ repository.PendidikanRepository = (*PendidikanRepo)(nil)

// PendidikanRepo adapter PendidikanRepository di atas PostgreSQL.
type PendidikanRepo struct {
	db querier
}

// NewPendidikanRepository membangun adapter riwayat pendidikan.
func NewPendidikanRepository(db querier) *PendidikanRepo {
	return &PendidikanRepo{db: db}
}

// Create menyimpan riwayat pendidikan baru.
func (r *PendidikanRepo) Create(p *entity.Pendidikan) error {
	query := `
		INSERT INTO pendidikan (id, employee_id, jenjang, nama_sekolah, tahun_masuk, tahun_lulus, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.EmployeeID, p.Jenjang, p.NamaSekolah, p.TahunMasuk, p.TahunLulus,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pendidikan: %w", err)
	}
	return nil
}

// GetByIDAndEmployee nil, nil bila id tidak ada atau bukan milik employee tsb.
func (r *PendidikanRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Pendidikan, error) {
	query := `
		SELECT id, employee_id, jenjang, nama_sekolah, tahun_masuk, tahun_lulus, created_at, updated_at
		FROM pendidikan WHERE id = $1 AND employee_id = $2`
	var p entity.Pendidikan
	err := r.db.QueryRow(context.Background(), query, id, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.Jenjang, &p.NamaSekolah, &p.TahunMasuk, &p.TahunLulus,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pendidikan: %w", err)
	}
	return &p, nil
}

// ListByEmployee urut sesuai waktu dibuat (terlama dulu).
func (r *PendidikanRepo) ListByEmployee(employeeID string) ([]*entity.Pendidikan, error) {
	query := `
		SELECT id, employee_id, jenjang, nama_sekolah, tahun_masuk, tahun_lulus, created_at, updated_at
		FROM pendidikan WHERE employee_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list pendidikan: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pendidikan
	for rows.Next() {
		var p entity.Pendidikan
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Jenjang, &p.NamaSekolah, &p.TahunMasuk, &p.TahunLulus, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pendidikan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update menimpa kolom mutable.
func (r *PendidikanRepo) Update(p *entity.Pendidikan) error {
	query := `
		UPDATE pendidikan SET jenjang = $2, nama_sekolah = $3, tahun_masuk = $4, tahun_lulus = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Jenjang, p.NamaSekolah, p.TahunMasuk, p.TahunLulus, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pendidikan: %w", err)
	}
	return nil
}

// Delete menghapus satu riwayat pendidikan.
func (r *PendidikanRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM pendidikan WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pendidikan: %w", err)
	}
	return nil
}

// DeleteByEmployee dipakai cascade delete karyawan.
func (r *PendidikanRepo) DeleteByEmployee(employeeID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM pendidikan WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("delete pendidikan by employee: %w", err)
	}
	return nil
}
