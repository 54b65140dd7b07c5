//go:build atmega328p

package boards

import (
	"powersave-go/atmega328"
	"powersave-go/powerdown"
)

func newHardware(c CPU, _ powerdown.Profile) (powerdown.Hardware, error) {
	switch c {
	case CPUATmega328:
		return atmega328.New(), nil
	default:
		return nil, errUnknownCPU(c)
	}
}
