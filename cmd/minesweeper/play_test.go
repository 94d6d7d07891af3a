package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		op    byte
		x, y  int
	}{
		{"u[2,3]", 'u', 2, 3},
		{"f[0,0]", 'f', 0, 0},
		{"?[10,5]", '?', 10, 5},
		{"c[1, 2]", 'c', 1, 2},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()
			op, x, y, err := parseCommand(test.input)
			assert.NoError(t, err)
			assert.Equal(t, test.op, op)
			assert.Equal(t, test.x, x)
			assert.Equal(t, test.y, y)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"u",
		"z[1,2]",
		"u1,2",
		"u[1,2",
		"u[1]",
		"u[1,2,3]",
		"u[a,b]",
	}

	for _, input := range inputs {
		_, _, _, err := parseCommand(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestCreateRandSeeded(t *testing.T) {
	t.Parallel()

	a, b := createRand(42), createRand(42)
	for range 10 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
