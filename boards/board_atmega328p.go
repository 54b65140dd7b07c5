//go:build atmega328p && !lowvolt

package boards

// Arduino Uno / Nano and other 5 V ATmega328P boards.
var Selected = Board{
	Name:         "atmega328p_5v",
	CPU:          CPUATmega328,
	SupplyMilliV: 5000,
}
