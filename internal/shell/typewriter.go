package shell

import (
	"fmt"
	"io"
	"time"
)

// Typewriter renders agent utterances one rune at a time, the cosmetic
// typing effect of the original game. A zero delay prints immediately.
type Typewriter struct {
	out   io.Writer
	delay time.Duration
}

// NewTypewriter builds a typewriter with a per-rune delay.
func NewTypewriter(out io.Writer, delay time.Duration) *Typewriter {
	return &Typewriter{out: out, delay: delay}
}

// Print writes the prefix at once, then the message rune by rune, then a
// newline.
func (t *Typewriter) Print(prefix, message string) {
	fmt.Fprint(t.out, prefix)
	for _, r := range message {
		fmt.Fprint(t.out, string(r))
		if t.delay > 0 {
			time.Sleep(t.delay)
		}
	}
	fmt.Fprintln(t.out)
}
