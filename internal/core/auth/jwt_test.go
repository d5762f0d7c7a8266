package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "taskboard-test", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer(time.Hour)

	tok, err := j.Issue("u-1", "john@x.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UID)
	assert.Equal(t, "john@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "taskboard-test", claims.Issuer)
}

func TestParseTampered(t *testing.T) {
	j := newTestJWTer(time.Hour)
	tok, err := j.Issue("u-1", "john@x.com", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok + "x")
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	tok, err := j.Issue("u-1", "john@x.com", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "taskboard-test", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	// 过期要超过 60s 的 leeway 才会被拒
	j := newTestJWTer(-2 * time.Minute)
	tok, err := j.Issue("u-1", "john@x.com", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := other.Issue("u-1", "john@x.com", "user")
	require.NoError(t, err)

	j := newTestJWTer(time.Hour)
	_, err = j.Parse(tok)
	assert.Error(t, err)
}
