package errcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Equal(t, OK, Of(nil))
	assert.Equal(t, Busy, Of(Busy))
	assert.Equal(t, UnknownCPU, Of(Wrap(UnknownCPU, "boards.Open", "attiny85")))
	assert.Equal(t, Error, Of(errors.New("boom")))
}

func TestWrapMessageAndIs(t *testing.T) {
	err := Wrap(UnknownProfile, "powerdown.New", "profile 9")
	assert.Equal(t, "powerdown.New: unknown_profile: profile 9", err.Error())
	assert.ErrorIs(t, err, UnknownProfile)
	assert.NotErrorIs(t, err, UnknownCPU)

	bare := &E{C: InvalidParams}
	assert.Equal(t, "invalid_params", bare.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("i2c nack")
	err := &E{C: Error, Op: "read", Err: cause}
	assert.ErrorIs(t, err, cause)
}
