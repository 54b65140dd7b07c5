//go:build atmega328p

package atmega328

import (
	"device/avr"
	"runtime/interrupt"

	"powersave-go/powerdown"
)

func init() {
	interrupt.New(avr.IRQ_WDT, handleWDT)
}

func handleWDT(interrupt.Interrupt) { powerdown.HandleWake() }

// Watchdog drives the on-chip watchdog, sleep controller and ADC.
type Watchdog struct{}

func New() *Watchdog { return &Watchdog{} }

func (w *Watchdog) Arm(c powerdown.Class) { w.write(ArmSequence(c)) }

func (w *Watchdog) Disarm() { w.write(DisarmSequence) }

// write runs a timed WDTCSR sequence with interrupts off. The counter is
// reset first so the new timeout starts from zero.
func (w *Watchdog) write(seq [2]uint8) {
	mask := interrupt.Disable()
	avr.Asm("wdr")
	avr.MCUSR.ClearBits(WDRF)
	avr.WDTCSR.Set(seq[0])
	avr.WDTCSR.Set(seq[1])
	interrupt.Restore(mask)
}

func (w *Watchdog) DisableADC() { avr.ADCSRA.ClearBits(ADEN) }
func (w *Watchdog) EnableADC()  { avr.ADCSRA.SetBits(ADEN) }

func (w *Watchdog) Sleep() {
	avr.SMCR.Set(SleepPowerDown | SE)
	avr.Asm("sleep")
	avr.SMCR.ClearBits(SE)
}
