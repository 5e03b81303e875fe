package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-teixeira/http-enum/status"
)

func TestRFC7231TryClassFromInteger(t *testing.T) {
	for _, code := range status.Codes() {
		got, ok := status.RFC7231.TryClassFromInteger(int(code))
		assert.True(t, ok, "code %d", code)
		assert.Equal(t, code.Class(), got, "code %d", code)
	}

	for _, n := range []int{0, -1, 99, 199, 299, 306, 399, 499, 599, 600, 9999} {
		got, ok := status.RFC7231.TryClassFromInteger(n)
		assert.False(t, ok, "value %d", n)
		assert.Equal(t, status.NoClass, got, "value %d", n)
	}
}

func TestRFC7231ClassFromInteger(t *testing.T) {
	got, err := status.RFC7231.ClassFromInteger(404)
	require.NoError(t, err)
	assert.Equal(t, status.ClientError, got)

	_, err = status.RFC7231.ClassFromInteger(199)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)
	assert.Equal(t, `199 is not a valid value for enum "status.Class"`, err.Error())
}

func TestRFC9110ClassFromInteger(t *testing.T) {
	tests := map[int]status.Class{
		-1:   status.ServerError,
		0:    status.ServerError,
		99:   status.ServerError,
		100:  status.Informational,
		199:  status.Informational,
		200:  status.Successful,
		255:  status.Successful,
		300:  status.Redirection,
		355:  status.Redirection,
		400:  status.ClientError,
		455:  status.ClientError,
		500:  status.ServerError,
		555:  status.ServerError,
		600:  status.ServerError,
		700:  status.ServerError,
		9999: status.ServerError,
	}

	for n, want := range tests {
		got, err := status.RFC9110.ClassFromInteger(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "value %d", n)

		got, ok := status.RFC9110.TryClassFromInteger(n)
		assert.True(t, ok, "value %d", n)
		assert.Equal(t, want, got, "value %d", n)
	}
}

func TestPoliciesAgreeOnRegisteredCodes(t *testing.T) {
	for _, code := range status.Codes() {
		a, err := status.RFC7231.ClassFromInteger(int(code))
		require.NoError(t, err)
		b, err := status.RFC9110.ClassFromInteger(int(code))
		require.NoError(t, err)
		assert.Equal(t, a, b, "code %d", code)
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]status.Policy{
		"rfc7231":   status.RFC7231,
		"RFC9110":   status.RFC9110,
		" rfc9110 ": status.RFC9110,
		"7231":      status.RFC7231,
	} {
		got, err := status.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := status.ParsePolicy("rfc2616")
	assert.ErrorIs(t, err, status.ErrInvalidArgument)

	assert.Equal(t, "rfc7231", status.RFC7231.String())
	assert.Equal(t, "rfc9110", status.RFC9110.String())
}

func TestPolicyAsResolver(t *testing.T) {
	resolvers := map[string]status.ClassResolver{
		"rfc7231": status.RFC7231,
		"rfc9110": status.RFC9110,
	}
	for name, r := range resolvers {
		got, ok := r.TryClassFromInteger(418)
		assert.True(t, ok, name)
		assert.Equal(t, status.ClientError, got, name)
	}
}

func TestUnknownPolicy(t *testing.T) {
	var zero status.Policy
	for _, p := range []status.Policy{zero, status.Policy(9)} {
		got, ok := p.TryClassFromInteger(404)
		assert.False(t, ok, p.String())
		assert.Equal(t, status.NoClass, got, p.String())

		_, err := p.ClassFromInteger(199)
		require.Error(t, err, p.String())
		assert.ErrorIs(t, err, status.ErrInvalidArgument)
		assert.Contains(t, err.Error(), `"status.Policy"`)
	}
	assert.Equal(t, "Policy(0)", zero.String())
}
