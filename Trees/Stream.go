package Trees

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stream is a forward-only source of text records. Records are read by the
// elements themselves through Token or Line; the tree only checks EOF after
// each attempt.
// EOF becomes true once a read finds no more input. A last record without a
// trailing newline is still delivered, EOF only turns true on the read after it.
type Stream struct {
	r    *bufio.Reader
	done bool  // the underlying reader returned an error.
	eof  bool  // a read came back empty after done.
	err  error // first error other than io.EOF.
}

// NewStream reads records from r.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

func (u *Stream) fail(err error) {
	u.done = true
	if u.err == nil && !errors.Is(err, io.EOF) {
		u.err = err
	}
}

// Token returns the next whitespace separated token. The delimiter following
// the token is left unread. Bytes that aren't valid UTF-8 are kept unchanged.
func (u *Stream) Token() (string, bool) {
	var b strings.Builder
	for !u.done {
		c, sz, err := u.r.ReadRune()
		if err != nil {
			u.fail(err)
			break
		}
		if unicode.IsSpace(c) {
			if b.Len() > 0 {
				_ = u.r.UnreadRune()
				break
			}
			continue
		}
		if c == utf8.RuneError && sz == 1 {
			// keep invalid bytes as they are.
			_ = u.r.UnreadRune()
			x, _ := u.r.ReadByte()
			b.WriteByte(x)
			continue
		}
		b.WriteRune(c)
	}
	if b.Len() == 0 {
		u.eof = true
		return "", false
	}
	return b.String(), true
}

// Line returns the rest of the current line with surrounding spaces trimmed.
// An empty line gives ("", true).
func (u *Stream) Line() (string, bool) {
	if u.done {
		u.eof = true
		return "", false
	}
	s, err := u.r.ReadString('\n')
	if err != nil {
		u.fail(err)
		if len(s) == 0 {
			u.eof = true
			return "", false
		}
	}
	return strings.TrimSpace(s), true
}

// EOF reports whether a read attempt ran out of input.
func (u *Stream) EOF() bool {
	return u.eof
}

// Err returns the first read error that wasn't io.EOF. Such an error also ends
// the stream.
func (u *Stream) Err() error {
	return u.err
}
