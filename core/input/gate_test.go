package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

// typeAt feeds s with a fixed gap between keystrokes and collects emitted tokens.
func typeAt(g *Gate, s string, start time.Time, gap time.Duration) ([]string, time.Time) {
	var out []string
	at := start
	for _, r := range s {
		if tok, ok := g.Feed(r, at); ok {
			out = append(out, tok)
		}
		at = at.Add(gap)
	}
	return out, at
}

func TestGate_FastBurstEmittedOnNextKeystroke(t *testing.T) {
	g := NewGate(Config{})

	out, at := typeAt(g, "4600000000017", t0, 5*time.Millisecond)
	assert.Empty(t, out)

	tok, ok := g.Feed('9', at.Add(time.Second))
	require.True(t, ok)
	assert.Equal(t, "4600000000017", tok)
	assert.Equal(t, "9", g.Pending())
}

func TestGate_FastBurstExpires(t *testing.T) {
	g := NewGate(Config{MinLength: 8, ManualThresholdMs: 50})
	_, at := typeAt(g, "BOX-000123", t0, 3*time.Millisecond)

	_, ok := g.Expire(at.Add(10 * time.Millisecond))
	assert.False(t, ok)

	tok, ok := g.Expire(at.Add(100 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, "BOX-000123", tok)
	assert.Empty(t, g.Pending())
}

func TestGate_ShortBurstWaitsForEnter(t *testing.T) {
	g := NewGate(Config{})
	_, at := typeAt(g, "B12", t0, 3*time.Millisecond)

	_, ok := g.Expire(at.Add(time.Second))
	assert.False(t, ok)

	tok, ok := g.Feed('\n', at.Add(2*time.Second))
	require.True(t, ok)
	assert.Equal(t, "B12", tok)
}

func TestGate_ManualTypingHeldUntilEnter(t *testing.T) {
	g := NewGate(Config{})

	out, at := typeAt(g, "SHIPMENT-42", t0, 200*time.Millisecond)
	assert.Empty(t, out)
	assert.True(t, g.Manual())

	_, ok := g.Expire(at.Add(time.Minute))
	assert.False(t, ok)

	tok, ok := g.Terminate()
	require.True(t, ok)
	assert.Equal(t, "SHIPMENT-42", tok)
	assert.False(t, g.Manual())
}

func TestGate_EmptyTokensNotEmitted(t *testing.T) {
	g := NewGate(Config{})

	_, ok := g.Feed('\r', t0)
	assert.False(t, ok)

	g.Feed(' ', t0)
	g.Feed(' ', t0.Add(time.Millisecond))
	_, ok = g.Terminate()
	assert.False(t, ok)
}

func TestGate_TokenTrimmed(t *testing.T) {
	g := NewGate(Config{})
	typeAt(g, "  ABC ", t0, time.Millisecond)

	tok, ok := g.Terminate()
	require.True(t, ok)
	assert.Equal(t, "ABC", tok)
}

func TestConfig_ManualThreshold(t *testing.T) {
	assert.Equal(t, DefaultManualThreshold, Config{}.ManualThreshold())
	assert.Equal(t, 120*time.Millisecond, Config{ManualThresholdMs: 120}.ManualThreshold())
}
