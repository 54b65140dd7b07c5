//go:build !avr

package boards

import (
	"powersave-go/atmega328"
	"powersave-go/powerdown"
)

func newHardware(c CPU, profile powerdown.Profile) (powerdown.Hardware, error) {
	switch c {
	case CPUATmega328:
		t, err := powerdown.TableFor(profile)
		if err != nil {
			return nil, err
		}
		w := atmega328.New()
		w.Delay = atmega328.Paced(t)
		return w, nil
	default:
		return nil, errUnknownCPU(c)
	}
}
