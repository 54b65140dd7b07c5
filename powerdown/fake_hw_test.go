package powerdown

import "strconv"

// fakeHW records every capability call. Sleep raises the wake interrupt
// unless spurious wakes are still pending.
type fakeHW struct {
	log      []string
	spurious int
	observed []bool // Awake() as seen while the CPU "sleeps"
	onSleep  func()
}

func (f *fakeHW) Arm(c Class) { f.log = append(f.log, "arm:"+strconv.Itoa(int(c))) }
func (f *fakeHW) DisableADC() { f.log = append(f.log, "adc:off") }
func (f *fakeHW) EnableADC()  { f.log = append(f.log, "adc:on") }
func (f *fakeHW) Disarm()     { f.log = append(f.log, "disarm") }
func (f *fakeHW) Sleep() {
	f.log = append(f.log, "sleep")
	f.observed = append(f.observed, Awake())
	if f.onSleep != nil {
		f.onSleep()
	}
	if f.spurious > 0 {
		f.spurious--
		return
	}
	HandleWake()
}

func (f *fakeHW) count(entry string) int {
	n := 0
	for _, e := range f.log {
		if e == entry {
			n++
		}
	}
	return n
}
