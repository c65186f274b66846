package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("15:04").Validate())
	assert.NoError(t, TimeString("23:59").Validate())

	assert.Error(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("9:00").Validate())
	assert.Error(t, TimeString("12:60").Validate())
	assert.Error(t, TimeString("12.30").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestLexicographicComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestHour(t *testing.T) {
	h, err := TimeString("15:00").Hour()
	require.NoError(t, err)
	assert.Equal(t, 15, h)

	h, err = TimeString("00:30").Hour()
	require.NoError(t, err)
	assert.Equal(t, 0, h)

	_, err = TimeString("bad").Hour()
	assert.Error(t, err)
}

func TestScan_TrimsSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("17:00:00"))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan([]byte("09:30:15")))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
