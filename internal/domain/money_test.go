package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"0", 0, true},
		{"0,00", 0, true},
		{"100", 10000, true},
		{"12.345", 1234, true},
		{"12.346", 1235, true},
		{" 5,5 ", 550, true},
		{",50", 50, true},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
		{"12,3x", 0, false},
	}
	for _, tc := range cases {
		cents, err := ParsePriceToCents(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.cents, cents, "input %q", tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tc.in)
		}
	}
}

func TestCentsFromNumber(t *testing.T) {
	assert.Equal(t, int64(10000), CentsFromNumber(100))
	assert.Equal(t, int64(9990), CentsFromNumber(99.9))
	assert.Equal(t, int64(1235), CentsFromNumber(12.345))
	assert.Equal(t, int64(0), CentsFromNumber(0))
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{50, "R$ 0,50"},
		{65000, "R$ 650,00"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-1234, "-R$ 12,34"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBRL(tc.cents))
	}
}
