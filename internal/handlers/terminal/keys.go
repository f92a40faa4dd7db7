package terminal

import (
	"errors"
	"io"
	"unicode/utf8"
)

// KeyCode identifies the kind of key event decoded from raw terminal input.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyCancel      // Ctrl-C
	KeyEndOfInput  // Ctrl-D
	KeyClearScreen // Ctrl-L
)

const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	ctrlH     = 0x08
	ctrlL     = 0x0c
	escape    = 0x1b
	del       = 0x7f
	firstText = 0x20
)

// Key is a single key press. Rune is only set for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// KeyReader decodes key presses from a terminal in raw mode.
// It reads one byte at a time and never takes more from the terminal than the
// key it decodes, so input typed ahead of a submitted line stays on the
// terminal for whichever program reads next.
type KeyReader struct {
	r          io.Reader
	buf        [1]byte
	pending    byte
	hasPending bool
}

// NewKeyReader creates a KeyReader over r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// ReadKey blocks until the next key press is available.
// Escape sequences such as arrow keys are consumed whole and reported as KeyUnknown.
func (k *KeyReader) ReadKey() (Key, error) {
	b, err := k.readByte()
	if err != nil {
		return Key{}, err
	}

	switch {
	case b >= utf8.RuneSelf:
		return k.decodeRune(b)
	case b == ctrlC:
		return Key{Code: KeyCancel}, nil
	case b == ctrlD:
		return Key{Code: KeyEndOfInput}, nil
	case b == ctrlL:
		return Key{Code: KeyClearScreen}, nil
	case b == '\r' || b == '\n':
		return Key{Code: KeyEnter}, nil
	case b == del || b == ctrlH:
		return Key{Code: KeyBackspace}, nil
	case b == escape:
		if err := k.skipEscapeSequence(); err != nil {
			return Key{}, err
		}
		return Key{Code: KeyUnknown}, nil
	case b < firstText:
		return Key{Code: KeyUnknown}, nil
	default:
		return Key{Code: KeyRune, Rune: rune(b)}, nil
	}
}

// decodeRune reads the continuation bytes of a multibyte UTF-8 sequence
// started by lead. A byte that cannot continue the sequence is kept for the
// next ReadKey.
func (k *KeyReader) decodeRune(lead byte) (Key, error) {
	var size int
	switch {
	case lead&0xe0 == 0xc0:
		size = 2
	case lead&0xf0 == 0xe0:
		size = 3
	case lead&0xf8 == 0xf0:
		size = 4
	default:
		return Key{Code: KeyUnknown}, nil
	}

	seq := make([]byte, 1, size)
	seq[0] = lead
	for len(seq) < size {
		b, err := k.readByte()
		if err != nil {
			return Key{}, err
		}
		if !utf8.RuneStart(b) {
			seq = append(seq, b)
			continue
		}
		k.unreadByte(b)
		return Key{Code: KeyUnknown}, nil
	}

	r, n := utf8.DecodeRune(seq)
	if r == utf8.RuneError && n <= 1 {
		return Key{Code: KeyUnknown}, nil
	}
	return Key{Code: KeyRune, Rune: r}, nil
}

// skipEscapeSequence drops the rest of a CSI ("ESC [") or SS3 ("ESC O")
// sequence. After a lone escape the next key is kept for the next ReadKey.
func (k *KeyReader) skipEscapeSequence() error {
	next, err := k.readByte()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	switch next {
	case 'O':
		_, err := k.readByte()
		return err
	case '[':
		// Parameter and intermediate bytes run until a final byte in 0x40-0x7e.
		for {
			b, err := k.readByte()
			if err != nil {
				return err
			}
			if b >= 0x40 && b <= 0x7e {
				return nil
			}
		}
	default:
		k.unreadByte(next)
		return nil
	}
}

func (k *KeyReader) readByte() (byte, error) {
	if k.hasPending {
		k.hasPending = false
		return k.pending, nil
	}
	for {
		n, err := k.r.Read(k.buf[:])
		if n == 1 {
			return k.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (k *KeyReader) unreadByte(b byte) {
	k.pending = b
	k.hasPending = true
}
