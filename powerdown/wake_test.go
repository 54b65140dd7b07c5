package powerdown

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWakeFlagZeroValueIsAwake(t *testing.T) {
	var f WakeFlag
	assert.True(t, f.Awake())
	f.Clear()
	assert.False(t, f.Awake())
	f.Set()
	assert.True(t, f.Awake())
}

func TestWakeFlagSetFromOtherGoroutine(t *testing.T) {
	var f WakeFlag
	f.Clear()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Set()
	}()
	wg.Wait()
	assert.True(t, f.Awake())
}
