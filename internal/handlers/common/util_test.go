package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "2", want: 2, ok: true},
		{in: "2abc", want: 2, ok: true},
		{in: "  42", want: 42, ok: true},
		{in: "7.9", want: 7, ok: true},
		{in: "-3x", want: -3, ok: true},
		{in: "+4", want: 4, ok: true},
		{in: "", ok: false},
		{in: "abc", ok: false},
		{in: "-", ok: false},
		{in: "x2", ok: false},
		{in: "99999999999999999999999", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
