package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jnasution/hris-api/pkg/jwt"
)

const (
	testSecret = "secret-untuk-unit-test"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "hris-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "admin", role)
}

func TestParse_TokenExpired(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "user", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token kedaluwarsa harus gagal di-parse")
}

func TestParse_SecretSalah(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "user", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("secret-yang-lain", tok)
	assert.Error(t, err)
}

func TestParse_TokenRusak(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "bukan.token.valid")
	assert.Error(t, err)
}
