// Package access berisi aturan kepemilikan record karyawan.
//
// Dua varian deployment memakai logika CRUD yang sama dan hanya berbeda di
// policy yang diinjeksi: ScopedPolicy membatasi akses ke owner/creator,
// OpenPolicy mengizinkan siapa pun (mode admin lama).
package access

import "github.com/jnasution/hris-api/internal/domain/entity"

// Policy memutuskan apakah pemanggil boleh melihat/mengubah sebuah Employee.
type Policy interface {
	// Scoped true bila listing dan aturan owner/creator harus difilter per pemanggil.
	Scoped() bool
	// Allows true bila callerID boleh mengakses e.
	Allows(e *entity.Employee, callerID string) bool
}

// ScopedPolicy varian scoped: akses hanya untuk owner atau creator record.
type ScopedPolicy struct{}

// Scoped selalu true.
func (ScopedPolicy) Scoped() bool { return true }

// Allows true iff caller adalah owner (user_id) atau creator (created_by_id).
func (ScopedPolicy) Allows(e *entity.Employee, callerID string) bool {
	if e == nil || callerID == "" {
		return false
	}
	if e.UserID != nil && *e.UserID == callerID {
		return true
	}
	return e.CreatedByID == callerID
}

// OpenPolicy varian open: semua pemanggil boleh mengakses semua record.
type OpenPolicy struct{}

func (OpenPolicy) Scoped() bool { return false }

func (OpenPolicy) Allows(_ *entity.Employee, _ string) bool { return true }

// ForScoped mengembalikan policy sesuai flag konfigurasi ACCESS_SCOPED.
func ForScoped(scoped bool) Policy {
	if scoped {
		return ScopedPolicy{}
	}
	return OpenPolicy{}
}
