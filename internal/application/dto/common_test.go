package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnasution/hris-api/internal/application/dto"
)

// Tiga keadaan yang harus bisa dibedakan pada partial update:
// key tidak dikirim, key dikirim null, dan key dikirim dengan nilai.
func TestNullable_TigaKeadaan(t *testing.T) {
	type payload struct {
		Foto dto.Nullable[string] `json:"foto"`
	}

	var absen payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absen))
	assert.False(t, absen.Foto.Set, "key tidak dikirim: Set=false")

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"foto":null}`), &null))
	assert.True(t, null.Foto.Set)
	assert.False(t, null.Foto.Valid, "null eksplisit: Set=true, Valid=false")

	var isi payload
	require.NoError(t, json.Unmarshal([]byte(`{"foto":"/uploads/users/a.jpg"}`), &isi))
	assert.True(t, isi.Foto.Set)
	assert.True(t, isi.Foto.Valid)
	assert.Equal(t, "/uploads/users/a.jpg", isi.Foto.Value)
}

func TestNullable_StringKosongBukanNull(t *testing.T) {
	type payload struct {
		Foto dto.Nullable[string] `json:"foto"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"foto":""}`), &p))

	assert.True(t, p.Foto.Set)
	assert.True(t, p.Foto.Valid, `"" adalah nilai, bukan permintaan mengosongkan`)
	assert.Equal(t, "", p.Foto.Value)
}

func TestNullable_Int(t *testing.T) {
	type payload struct {
		TahunLulus dto.Nullable[int] `json:"tahunLulus"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"tahunLulus":2016}`), &p))
	assert.True(t, p.TahunLulus.Set)
	assert.True(t, p.TahunLulus.Valid)
	assert.Equal(t, 2016, p.TahunLulus.Value)
}

func TestPageRequest_Default(t *testing.T) {
	p := dto.PageRequest{Limit: 0, Offset: -5}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 500, Offset: 10}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit, "limit dibatasi maksimal 100")
	assert.Equal(t, 10, p.Offset)
}
