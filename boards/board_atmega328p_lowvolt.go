//go:build atmega328p && lowvolt

package boards

// 3.3 V / 8 MHz ATmega328P boards (Pro Mini 3V3, bare chip on a LiPo cell).
var Selected = Board{
	Name:         "atmega328p_3v3",
	CPU:          CPUATmega328,
	SupplyMilliV: 3300,
}
