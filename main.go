package main

import (
	"time"

	"powersave-go/boards"
)

func main() {
	// Allow the serial console to come up before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	pd, err := boards.Open()
	if err != nil {
		println("powerdown:", err.Error())
		return
	}
	println("board", boards.Selected.Name, "profile", pd.Profile().String())

	// Heartbeat, sleeping between beats instead of ticking.
	for {
		println("heartbeat, slept ms:", int64(pd.Slept()/time.Millisecond))
		if _, err := pd.RequestSleep(1000); err != nil {
			println("sleep:", err.Error())
		}
	}
}
