package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

var _ repository.PekerjaanRepository = (*PekerjaanRepo)(nil)

// PekerjaanRepo adapter PekerjaanRepository di atas PostgreSQL.
// Kolom gaji NUMERIC di-scan ke decimal lewat codec pgx-shopspring-decimal.
type PekerjaanRepo struct {
	db querier
}

// NewPekerjaanRepository membangun adapter riwayat pekerjaan.
func NewPekerjaanRepository(db querier) *PekerjaanRepo {
	return &PekerjaanRepo{db: db}
}

// Create menyimpan riwayat pekerjaan baru.
func (r *PekerjaanRepo) Create(p *entity.Pekerjaan) error {
	query := `
		INSERT INTO pekerjaan (id, employee_id, nama_perusahaan, jabatan, tahun_masuk, tahun_keluar, gaji, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.EmployeeID, p.NamaPerusahaan, p.Jabatan, p.TahunMasuk, p.TahunKeluar, p.Gaji,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pekerjaan: %w", err)
	}
	return nil
}

// GetByIDAndEmployee nil, nil bila id tidak ada atau bukan milik employee tsb.
func (r *PekerjaanRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Pekerjaan, error) {
	query := `
		SELECT id, employee_id, nama_perusahaan, jabatan, tahun_masuk, tahun_keluar, gaji, created_at, updated_at
		FROM pekerjaan WHERE id = $1 AND employee_id = $2`
	var p entity.Pekerjaan
	err := r.db.QueryRow(context.Background(), query, id, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.NamaPerusahaan, &p.Jabatan, &p.TahunMasuk, &p.TahunKeluar, &p.Gaji,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pekerjaan: %w", err)
	}
	return &p, nil
}

// ListByEmployee urut sesuai waktu dibuat (terlama dulu).
func (r *PekerjaanRepo) ListByEmployee(employeeID string) ([]*entity.Pekerjaan, error) {
	query := `
		SELECT id, employee_id, nama_perusahaan, jabatan, tahun_masuk, tahun_keluar, gaji, created_at, updated_at
		FROM pekerjaan WHERE employee_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list pekerjaan: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pekerjaan
	for rows.Next() {
		var p entity.Pekerjaan
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.NamaPerusahaan, &p.Jabatan, &p.TahunMasuk, &p.TahunKeluar, &p.Gaji, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pekerjaan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update menimpa kolom mutable.
func (r *PekerjaanRepo) Update(p *entity.Pekerjaan) error {
	query := `
		UPDATE pekerjaan SET nama_perusahaan = $2, jabatan = $3, tahun_masuk = $4, tahun_keluar = $5, gaji = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.NamaPerusahaan, p.Jabatan, p.TahunMasuk, p.TahunKeluar, p.Gaji, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pekerjaan: %w", err)
	}
	return nil
}

// Delete menghapus satu riwayat pekerjaan.
func (r *PekerjaanRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM pekerjaan WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pekerjaan: %w", err)
	}
	return nil
}

// DeleteByEmployee dipakai cascade delete karyawan.
func (r *PekerjaanRepo) DeleteByEmployee(employeeID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM pekerjaan WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("delete pekerjaan by employee: %w", err)
	}
	return nil
}
