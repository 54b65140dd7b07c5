//go:build avr && !atmega328p

package boards

var Selected = Board{Name: "avr", CPU: CPUUnknown, SupplyMilliV: 5000}
