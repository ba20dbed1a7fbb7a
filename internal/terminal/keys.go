package terminal

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Key names a decoded key press. Printable keys use their rune; special keys
// use the same names Bubble Tea reports so bindings read the same.
type Key string

const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyEscape    Key = "esc"
	KeyBackspace Key = "backspace"
	KeyCtrlC     Key = "ctrl+c"
)

// String implements fmt.Stringer so keys can be matched with key.Matches.
func (k Key) String() string {
	return string(k)
}

const (
	esc = 0x1b
	del = 0x7f
)

// Decoder turns raw terminal bytes into key presses. A sequence cut off at
// the end of one read is held until the rest arrives or Flush is called.
type Decoder struct {
	pending []byte
}

// Feed decodes chunk together with any bytes held from earlier reads. Unknown
// control and escape sequences are dropped.
func (d *Decoder) Feed(chunk []byte) []Key {
	buf := append(d.pending, chunk...)
	d.pending = nil

	var keys []Key
	for len(buf) > 0 {
		if buf[0] >= 0xc0 && !utf8.FullRune(buf) {
			d.hold(buf)
			break
		}
		seq, _, n, state := ansi.DecodeSequence(buf, ansi.NormalState, nil)
		if state != ansi.NormalState {
			d.hold(buf)
			break
		}
		if n <= 0 {
			n = 1
		}
		if isSS3(seq) {
			// ESC O is a complete escape sequence to the parser; the key
			// is the byte after it.
			if n >= len(buf) {
				d.hold(buf)
				break
			}
			if k := arrowKey(buf[n]); k != "" {
				keys = append(keys, k)
			}
			buf = buf[n+1:]
			continue
		}
		if k := sequenceKey(seq); k != "" {
			keys = append(keys, k)
		}
		buf = buf[n:]
	}
	return keys
}

// Pending reports whether an incomplete sequence is being held.
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// Flush gives up on the held bytes. A lone ESC is the Escape key; any other
// partial sequence is dropped.
func (d *Decoder) Flush() []Key {
	held := d.pending
	d.pending = nil
	if len(held) == 1 && held[0] == esc {
		return []Key{KeyEscape}
	}
	return nil
}

func (d *Decoder) hold(buf []byte) {
	d.pending = append([]byte(nil), buf...)
}

// Decode splits one complete chunk into key presses.
func Decode(buf []byte) []Key {
	var d Decoder
	keys := d.Feed(buf)
	return append(keys, d.Flush()...)
}

func isSS3(seq []byte) bool {
	return len(seq) == 2 && seq[0] == esc && seq[1] == 'O'
}

func sequenceKey(seq []byte) Key {
	switch {
	case len(seq) == 0:
		return ""
	case ansi.HasCsiPrefix(seq):
		// modifiers in the parameters are ignored, only the final byte counts
		return arrowKey(seq[len(seq)-1])
	case seq[0] == esc:
		if len(seq) == 1 {
			return KeyEscape
		}
		// alt+<key> and string sequences are not bound
		return ""
	case len(seq) == 1:
		return controlKey(seq[0])
	case utf8.Valid(seq):
		return Key(seq)
	}
	return ""
}

func controlKey(b byte) Key {
	switch {
	case b == 0x03:
		return KeyCtrlC
	case b == '\r' || b == '\n':
		return KeyEnter
	case b == '\t':
		return KeyTab
	case b == del || b == 0x08:
		return KeyBackspace
	case b >= 0x20 && b < del:
		return Key(string(rune(b)))
	}
	return ""
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return ""
}
