//go:build !avr

package atmega328

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powersave-go/powerdown"
)

var _ powerdown.Hardware = (*Watchdog)(nil)

func TestArmClearsResetFlag(t *testing.T) {
	w := New()
	w.regs.MCUSR = WDRF | 0x01

	w.Arm(5)
	r := w.Registers()
	assert.Equal(t, WDIE|0x05, r.WDTCSR)
	assert.Equal(t, uint8(0x01), r.MCUSR)

	w.Disarm()
	assert.Zero(t, w.Registers().WDTCSR)
}

func TestADCGating(t *testing.T) {
	w := New()
	w.DisableADC()
	assert.Zero(t, w.Registers().ADCSRA&ADEN)
	assert.Equal(t, uint8(0x07), w.Registers().ADCSRA) // prescaler untouched
	w.EnableADC()
	assert.Equal(t, ADEN|0x07, w.Registers().ADCSRA)
}

func TestSleepWithoutArmReturns(t *testing.T) {
	w := New()
	w.Sleep()
	assert.Zero(t, w.Sleeps())
}

func TestRequestSleepOnSimulator(t *testing.T) {
	w := New()
	pd, err := powerdown.New(w, powerdown.Voltage5V)
	require.NoError(t, err)

	plan, err := pd.RequestSleep(5000)
	require.NoError(t, err)
	assert.Equal(t, int(plan.Cycles()), w.Sleeps())

	r := w.Registers()
	assert.Equal(t, ADEN, r.ADCSRA&ADEN)
	assert.Zero(t, r.SMCR&SE)
	assert.Zero(t, r.WDTCSR)
	assert.True(t, pd.Awake())
}

func TestPacedSleepIsAsleepUntilDone(t *testing.T) {
	w := New()
	w.Delay = func(powerdown.Class) time.Duration { return 10 * time.Millisecond }
	pd, err := powerdown.New(w, powerdown.Voltage5V)
	require.NoError(t, err)

	done := make(chan powerdown.Plan)
	go func() {
		plan, _ := pd.RequestSleep(100) // 65 ms + 32.5 ms: two cycles
		done <- plan
	}()

	require.Eventually(t, func() bool {
		r := w.Registers()
		return !pd.Awake() && r.SMCR&SE != 0 && r.ADCSRA&ADEN == 0
	}, time.Second, time.Millisecond)

	select {
	case plan := <-done:
		assert.Equal(t, powerdown.Plan{0, 1, 1}, plan)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for sleep to finish")
	}
	assert.True(t, pd.Awake())
	assert.Equal(t, 2, w.Sleeps())
}

func TestPacedUsesTable(t *testing.T) {
	table, err := powerdown.TableFor(powerdown.Voltage3V)
	require.NoError(t, err)
	d := Paced(table)
	assert.Equal(t, 17100*time.Microsecond, d(0))
	assert.Equal(t, 2200*time.Millisecond, d(7))
}
