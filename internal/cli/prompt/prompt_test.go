package prompt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestIsAborted(t *testing.T) {
	assert.True(t, IsAborted(ErrAborted))
	assert.True(t, IsAborted(promptui.ErrInterrupt))
	assert.True(t, IsAborted(promptui.ErrAbort))
	assert.True(t, IsAborted(fmt.Errorf("reading password: %w", ErrAborted)))
	assert.False(t, IsAborted(errors.New("boom")))
	assert.False(t, IsAborted(nil))
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.Equal(t, ErrAborted, wrapError(promptui.ErrInterrupt))

	other := errors.New("tty closed")
	assert.Equal(t, other, wrapError(other))
}

func TestParseAnswer(t *testing.T) {
	assert.True(t, parseAnswer("y", false))
	assert.True(t, parseAnswer(" YES ", false))
	assert.False(t, parseAnswer("n", true))
	assert.True(t, parseAnswer("", true))
	assert.False(t, parseAnswer("", false))
}

func TestMinLengthValidator(t *testing.T) {
	validate := minLengthValidator(8)
	assert.Error(t, validate("short"))
	assert.NoError(t, validate("long enough"))
}
