package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiry(t *testing.T) {
	def := 7 * 24 * time.Hour

	cases := []struct {
		in   string
		want time.Duration
	}{
		{"15m", 15 * time.Minute},
		{"24h", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{" 30m ", 30 * time.Minute},
		{"", def},
		{"m", def},
		{"0d", def},
		{"-5h", def},
		{"10x", def},
		{"garbage", def},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseExpiry(c.in, def), "input %q", c.in)
	}
}
