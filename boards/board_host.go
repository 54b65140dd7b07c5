//go:build !avr

package boards

var Selected = Board{
	Name:         "host_sim",
	CPU:          CPUATmega328,
	SupplyMilliV: 5000,
}
