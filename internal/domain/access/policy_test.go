package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnasution/hris-api/internal/domain/access"
	"github.com/jnasution/hris-api/internal/domain/entity"
)

func employeeOf(ownerID, creatorID string) *entity.Employee {
	var owner *string
	if ownerID != "" {
		owner = &ownerID
	}
	return &entity.Employee{ID: "e1", UserID: owner, CreatedByID: creatorID}
}

func TestScopedPolicy_OwnerDanCreator(t *testing.T) {
	p := access.ScopedPolicy{}

	assert.True(t, p.Scoped())
	assert.True(t, p.Allows(employeeOf("u1", "u2"), "u1"), "owner boleh")
	assert.True(t, p.Allows(employeeOf("u1", "u2"), "u2"), "creator boleh")
	assert.False(t, p.Allows(employeeOf("u1", "u2"), "u3"), "pihak ketiga tidak boleh")
}

func TestScopedPolicy_TanpaOwner(t *testing.T) {
	p := access.ScopedPolicy{}

	assert.True(t, p.Allows(employeeOf("", "u2"), "u2"),
		"record tanpa owner tetap terlihat oleh creator-nya")
	assert.False(t, p.Allows(employeeOf("", "u2"), "u1"))
}

func TestScopedPolicy_InputKosong(t *testing.T) {
	p := access.ScopedPolicy{}

	assert.False(t, p.Allows(nil, "u1"))
	assert.False(t, p.Allows(employeeOf("u1", "u1"), ""),
		"caller kosong tidak pernah lolos")
}

func TestOpenPolicy_SemuaBoleh(t *testing.T) {
	p := access.OpenPolicy{}

	assert.False(t, p.Scoped())
	assert.True(t, p.Allows(employeeOf("u1", "u1"), "u9"))
	assert.True(t, p.Allows(nil, ""))
}

func TestForScoped(t *testing.T) {
	assert.True(t, access.ForScoped(true).Scoped())
	assert.False(t, access.ForScoped(false).Scoped())
}
