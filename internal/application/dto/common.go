package dto

import "encoding/json"

// PageRequest paginasi untuk listing.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage menerapkan nilai default bila Limit/Offset kosong.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadata halaman pada response listing.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse body error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Nullable membedakan field yang tidak dikirim (Set=false) dari field yang
// dikirim bernilai null (Set=true, Valid=false). Dipakai pada partial update
// untuk field yang boleh dikosongkan eksplisit (foto, tahunLulus, dst);
// sumber lama memakai truthiness sehingga "" tidak bisa dibedakan dari absen.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON dipanggil hanya bila key hadir di body.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Valid = false
		var zero T
		n.Value = zero
		return nil
	}
	n.Valid = true
	return json.Unmarshal(b, &n.Value)
}

// MarshalJSON untuk simetri (dipakai di test).
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
