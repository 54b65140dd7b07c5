//go:build !avr

package atmega328

import (
	"sync"
	"time"

	"powersave-go/powerdown"
)

// -----------------------------------------------------------------------------
// Host simulator: register file plus a goroutine standing in for the
// watchdog oscillator.
// -----------------------------------------------------------------------------

func handleWDT() { powerdown.HandleWake() }

// Watchdog simulates the ATmega328P sleep hardware on the host.
type Watchdog struct {
	// Delay is how long the simulated oscillator runs for a class before
	// raising the interrupt. Nil fires at once.
	Delay func(powerdown.Class) time.Duration

	mu     sync.Mutex
	regs   Registers
	armed  powerdown.Class
	sleeps int
}

// New returns a simulator in the state the Arduino core leaves the chip:
// ADC enabled with a /128 prescaler, watchdog off.
func New() *Watchdog {
	return &Watchdog{regs: Registers{ADCSRA: ADEN | 0x07}}
}

// Paced returns a Delay that sleeps the typical timeout from t.
func Paced(t powerdown.Table) func(powerdown.Class) time.Duration {
	return t.Duration
}

func (w *Watchdog) Arm(c powerdown.Class) {
	seq := ArmSequence(c)
	w.mu.Lock()
	w.write(seq)
	w.armed = c
	w.mu.Unlock()
}

func (w *Watchdog) Disarm() {
	w.mu.Lock()
	w.write(DisarmSequence)
	w.mu.Unlock()
}

func (w *Watchdog) write(seq [2]uint8) {
	w.regs.MCUSR &^= WDRF
	w.regs.WDTCSR = seq[0]
	w.regs.WDTCSR = seq[1]
}

func (w *Watchdog) DisableADC() {
	w.mu.Lock()
	w.regs.ADCSRA &^= ADEN
	w.mu.Unlock()
}

func (w *Watchdog) EnableADC() {
	w.mu.Lock()
	w.regs.ADCSRA |= ADEN
	w.mu.Unlock()
}

// Sleep blocks until the simulated watchdog interrupt has run. Without an
// armed interrupt it returns at once, as if woken by another source.
func (w *Watchdog) Sleep() {
	w.mu.Lock()
	if w.regs.WDTCSR&WDIE == 0 {
		w.mu.Unlock()
		return
	}
	w.regs.SMCR = SleepPowerDown | SE
	c := w.armed
	w.mu.Unlock()

	var d time.Duration
	if w.Delay != nil {
		d = w.Delay(c)
	}
	done := make(chan struct{})
	go func() {
		if d > 0 {
			time.Sleep(d)
		}
		handleWDT()
		close(done)
	}()
	<-done

	w.mu.Lock()
	w.regs.SMCR &^= SE
	w.sleeps++
	w.mu.Unlock()
}

// Registers returns a snapshot of the simulated registers.
func (w *Watchdog) Registers() Registers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.regs
}

// Sleeps returns how many times the simulated CPU has been woken.
func (w *Watchdog) Sleeps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sleeps
}
