//go:build atmega328p

// Command sensor-node is a battery AHT20 node: sample, print, sleep a minute.
package main

import (
	"machine"
	"time"

	"powersave-go/boards"
	"powersave-go/drivers/aht20"
	"powersave-go/powerdown"
)

const (
	sampleEvery = 60 * time.Second
	baud        = 9600
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: baud})
	println("[node] boot")

	pd, err := boards.Open()
	if err != nil {
		println("[node] powerdown:", err.Error())
		return
	}
	println("[node] board", boards.Selected.Name, "profile", pd.Profile().String())

	if err := machine.I2C0.Configure(machine.I2CConfig{Frequency: 100 * machine.KHz}); err != nil {
		println("[node] i2c:", err.Error())
		return
	}
	dev := aht20.New(machine.I2C0)
	if err := dev.Configure(aht20.Config{}); err != nil {
		println("[node] aht20:", err.Error())
	}

	wait := func(d time.Duration) { sleep(pd, d) }
	for {
		s, err := dev.Read(wait)
		if err != nil {
			println("[node] read:", err.Error())
		} else {
			println("[node] deci_c:", s.DeciCelsius(), "deci_rh:", s.DeciRelHumidity(),
				"slept_s:", uint32(pd.Slept()/time.Second))
		}
		// Let the UART drain before the clock stops.
		time.Sleep(10 * time.Millisecond)
		sleep(pd, sampleEvery)
	}
}

// sleep powers down for d. Waits below the smallest watchdog class are
// spent awake so short sensor delays are still honoured.
func sleep(pd *powerdown.Powerdown, d time.Duration) {
	plan, err := pd.Sleep(d)
	if err != nil || plan.Empty() {
		time.Sleep(d)
	}
}
