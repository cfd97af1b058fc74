package callbacks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParse_RoundTrip(t *testing.T) {
	data, err := Encode(PrefixWorkerControl, "proposal", "resend", ID(123456))
	require.NoError(t, err)
	assert.Equal(t, "w_c:proposal:resend:123456", data)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, PrefixWorkerControl, parsed.Prefix)
	assert.Equal(t, "resend", parsed.Field(1))

	id, err := parsed.Int64(2)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), id)
	assert.Equal(t, data, parsed.String())
}

func TestEncode_RejectsSeparatorInField(t *testing.T) {
	_, err := Encode(PrefixOccupation, "a:b")
	assert.ErrorIs(t, err, ErrBadField)
}

func TestEncode_RejectsOversizedPayload(t *testing.T) {
	_, err := Encode(PrefixAdmin, strings.Repeat("x", MaxLength))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestParse_PrefixOnly(t *testing.T) {
	parsed, err := Parse("noop")
	require.NoError(t, err)
	assert.Equal(t, PrefixNoop, parsed.Prefix)
	assert.Empty(t, parsed.Fields)
	assert.Equal(t, "", parsed.Field(0))
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestInt_BadField(t *testing.T) {
	parsed, _ := Parse("rate:five")
	_, err := parsed.Int(0)
	assert.ErrorIs(t, err, ErrBadField)
}

func TestMustEncode_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustEncode(PrefixSkip, strings.Repeat("y", 70))
	})
}
