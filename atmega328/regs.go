// Package atmega328 implements powerdown.Hardware for the ATmega328P: the
// watchdog in interrupt mode, power-down sleep and ADC gating.
//
// Register layouts follow the ATmega328P datasheet, sections 10.11 (SMCR),
// 11.9 (MCUSR, WDTCSR) and 24.9 (ADCSRA).
package atmega328

import (
	"powersave-go/powerdown"
	"powersave-go/x/mathx"
)

// WDTCSR bits.
const (
	WDIF uint8 = 1 << 7
	WDIE uint8 = 1 << 6
	WDP3 uint8 = 1 << 5
	WDCE uint8 = 1 << 4
	WDE  uint8 = 1 << 3

	wdpLow uint8 = 0x07 // WDP2..WDP0
)

// SMCR bits.
const (
	SE  uint8 = 1 << 0
	SM0 uint8 = 1 << 1
	SM1 uint8 = 1 << 2
	SM2 uint8 = 1 << 3

	// SleepPowerDown is the SM2..0 = 010 selection.
	SleepPowerDown = SM1
)

// ADCSRA and MCUSR bits.
const (
	ADEN uint8 = 1 << 7
	WDRF uint8 = 1 << 3
)

// The prescaler also encodes 4 s and 8 s (classes 8 and 9) through WDP3.
// powerdown never plans them because their timeouts are not characterised
// per voltage, but the encoding accepts them.
const maxPrescaler = 9

// TimeoutBits returns the WDP3..WDP0 field for class c.
func TimeoutBits(c powerdown.Class) uint8 {
	v := uint8(mathx.Clamp(c, 0, maxPrescaler))
	bits := v & wdpLow
	if v > 7 {
		bits |= WDP3
	}
	return bits
}

// ArmSequence is the timed write pair that starts the watchdog in interrupt
// mode (no system reset) with class c. Both writes must land within four
// cycles of each other.
func ArmSequence(c powerdown.Class) [2]uint8 {
	return [2]uint8{WDCE | WDE, WDIE | TimeoutBits(c)}
}

// DisarmSequence stops the watchdog. WDRF must be cleared first.
var DisarmSequence = [2]uint8{WDCE | WDE, 0}

// Registers mirrors the registers this package touches.
type Registers struct {
	WDTCSR uint8
	SMCR   uint8
	ADCSRA uint8
	MCUSR  uint8
}
