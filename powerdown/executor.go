package powerdown

// Hardware is the set of capabilities a processor family must provide.
// Planning and execution depend only on this interface.
type Hardware interface {
	// Arm restarts the watchdog in interrupt mode with timeout class c.
	Arm(c Class)
	// DisableADC powers the analog-to-digital converter down for the
	// duration of a sleep; EnableADC restores it on wake.
	DisableADC()
	EnableADC()
	// Sleep enters the low-power state. It returns after any interrupt,
	// not only the watchdog's.
	Sleep()
	// Disarm stops the watchdog once a plan is exhausted.
	Disarm()
}

// Execute walks p from the longest class down and blocks until every
// planned cycle has woken. It cannot fail.
func Execute(hw Hardware, p Plan) {
	if p.Empty() {
		return
	}
	for c := int(MaxClass); c >= int(MinClass); c-- {
		for n := p[c]; n > 0; n-- {
			cycle(hw, Class(c))
		}
	}
	hw.Disarm()
}

// cycle runs one Armed -> Sleeping -> Woken pass for class c.
func cycle(hw Hardware, c Class) {
	wake.Clear()
	arm(hw, c)
	hw.DisableADC()
	for !wake.Awake() {
		hw.Sleep()
	}
	hw.EnableADC()
}

// arm clamps out-of-range classes rather than rejecting them.
func arm(hw Hardware, c Class) { hw.Arm(clampClass(c)) }
