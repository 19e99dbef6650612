package usecase

import (
	"fmt"
	"time"

	"github.com/jnasution/hris-api/internal/domain"
)

// tanggalLayout format tanggal yang dipakai di seluruh API.
const tanggalLayout = "2006-01-02"

// parseTanggal menerima "2006-01-02" atau RFC3339; error memuat nama field.
func parseTanggal(field, s string) (time.Time, error) {
	if t, err := time.Parse(tanggalLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: format %s tidak valid", domain.ErrInvalidInput, field)
}

func formatTanggal(t time.Time) string {
	return t.Format(tanggalLayout)
}
