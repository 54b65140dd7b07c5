//go:build avr && !atmega328p

package boards

import "powersave-go/powerdown"

func newHardware(c CPU, _ powerdown.Profile) (powerdown.Hardware, error) {
	return nil, errUnknownCPU(c)
}
