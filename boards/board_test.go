//go:build !avr

package boards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powersave-go/errcode"
	"powersave-go/powerdown"
)

func TestOpenSelected(t *testing.T) {
	pd, err := Open()
	require.NoError(t, err)
	assert.Equal(t, powerdown.Voltage5V, pd.Profile())
}

func TestOpenBoardProfiles(t *testing.T) {
	pd, err := OpenBoard(Board{Name: "pro_mini", CPU: CPUATmega328, SupplyMilliV: 3300})
	require.NoError(t, err)
	assert.Equal(t, powerdown.Voltage3V, pd.Profile())
}

func TestOpenBoardUnknownCPU(t *testing.T) {
	_, err := OpenBoard(Board{Name: "attiny85", CPU: CPUUnknown, SupplyMilliV: 5000})
	assert.ErrorIs(t, err, errcode.UnknownCPU)
	assert.Contains(t, err.Error(), "unknown_cpu")
}

func TestOpenBoardBadSupply(t *testing.T) {
	_, err := OpenBoard(Board{Name: "brownout", CPU: CPUATmega328, SupplyMilliV: 1200})
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestHostBoardSleepsInRealTime(t *testing.T) {
	pd, err := Open()
	require.NoError(t, err)

	start := time.Now()
	plan, err := pd.RequestSleep(17) // one 16.3 ms cycle
	require.NoError(t, err)
	assert.Equal(t, powerdown.Plan{1}, plan)
	assert.GreaterOrEqual(t, time.Since(start), 16*time.Millisecond)
	assert.True(t, pd.Awake())
}
