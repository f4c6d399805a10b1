package input

import (
	"strings"
	"time"
)

// Gate buffers keystrokes until a complete token is recognised.
// A Gate is not safe for concurrent use.
type Gate struct {
	minLength int
	threshold time.Duration

	buf    []rune
	last   time.Time
	manual bool
}

// NewGate creates a gate from cfg, applying defaults for unset values.
func NewGate(cfg Config) *Gate {
	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Gate{minLength: minLength, threshold: cfg.ManualThreshold()}
}

// Feed adds one keystroke typed at the given instant. A newline or carriage
// return terminates the buffer. When the keystroke closes a fast burst, the
// burst is returned and r starts the next buffer.
func (g *Gate) Feed(r rune, at time.Time) (string, bool) {
	if r == '\n' || r == '\r' {
		return g.Terminate()
	}

	var token string
	var ok bool
	if len(g.buf) > 0 && at.Sub(g.last) > g.threshold {
		if g.burstComplete() {
			token, ok = g.take()
		} else {
			g.manual = true
		}
	}

	g.buf = append(g.buf, r)
	g.last = at
	return token, ok
}

// Expire emits a pending fast burst once no keystroke has arrived for longer
// than the threshold. Manually typed input is never expired.
func (g *Gate) Expire(now time.Time) (string, bool) {
	if len(g.buf) == 0 || now.Sub(g.last) <= g.threshold || !g.burstComplete() {
		return "", false
	}
	return g.take()
}

// Terminate emits whatever is buffered, regardless of mode.
func (g *Gate) Terminate() (string, bool) {
	return g.take()
}

// Pending returns the buffered text.
func (g *Gate) Pending() string {
	return string(g.buf)
}

// Manual reports whether the current buffer is being typed by hand.
func (g *Gate) Manual() bool {
	return g.manual
}

func (g *Gate) burstComplete() bool {
	return !g.manual && len(g.buf) >= g.minLength
}

func (g *Gate) take() (string, bool) {
	token := strings.TrimSpace(string(g.buf))
	g.buf = g.buf[:0]
	g.manual = false
	return token, token != ""
}
