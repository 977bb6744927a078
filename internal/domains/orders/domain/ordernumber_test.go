package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber_Shape(t *testing.T) {
	number := NewOrderNumber(time.Now())
	require.True(t, IsOrderNumber(number), "generated %q", number)
}

func TestNewOrderNumber_EmbedsTimestamp(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := NewOrderNumber(at)
	second := NewOrderNumber(at.Add(time.Second))
	require.NotEqual(t, first[:len(first)-5], second[:len(second)-5])
}

func TestNewOrderNumber_RarelyCollides(t *testing.T) {
	at := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[NewOrderNumber(at)] = true
	}
	// 4 random base36 chars give ~1.6M combinations; 200 draws should
	// stay far from saturating them.
	require.Greater(t, len(seen), 190)
}

func TestIsOrderNumber_RejectsMalformed(t *testing.T) {
	for _, value := range []string{
		"",
		"LO-",
		"XX-ABC123-AB12",
		"LO-ABC123-AB1",
		"LO-ABC123-AB123",
		"LO-abc123-AB12",
		"LO-ABC123-ab12",
		"LO-ABC123AB12",
	} {
		require.False(t, IsOrderNumber(value), "value %q", value)
	}
}
