package adaptor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  hello world  \n"), &out)

	got, err := p.String("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name: ", out.String())
}

func TestStringReturnsPartialLineAtEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("no newline"), &bytes.Buffer{})

	got, err := p.String("> ")
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestIntRepromptsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n42\n"), &out)

	got, err := p.Int(context.Background(), "ID: ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Contains(t, out.String(), "Please enter a valid integer.")
}

func TestIntInRange(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("9\n0\n3\n"), &out)

	got, err := p.IntInRange(context.Background(), "Choose: ", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Contains(t, out.String(), "Please enter a number between 1 and 5.")
}

func TestIntStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := p.Int(ctx, "ID: ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPasswordUsesSeam(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)
	p.readPassword = func() ([]byte, error) {
		return []byte("s3cret"), nil
	}

	got, err := p.Password("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.NotContains(t, out.String(), "s3cret")
}

func TestPasswordFallsBackWithoutTerminal(t *testing.T) {
	p := NewPrompter(strings.NewReader("typed-in-plain\n"), &bytes.Buffer{})
	p.readPassword = func() ([]byte, error) {
		return nil, errors.New("inappropriate ioctl for device")
	}

	got, err := p.Password("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "typed-in-plain", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Y\n", true},
		{"y\n", true},
		{"N\n", false},
		{"yes\n", false},
		{"\n", false},
	}
	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm("Confirm (Y/N): ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
