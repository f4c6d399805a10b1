// Package input assembles keystrokes into scan tokens.
//
// Hardware barcode scanners type a whole code in a burst of keystrokes a few
// milliseconds apart. A person typing is much slower. The Gate uses the gap
// between keystrokes to tell the two apart: a fast burst of at least
// MinLength characters is emitted as soon as the burst ends, while slowly
// typed input is held until Enter.
package input
