package Records

import (
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
)

// Entry is a line record "<key> <label...>". Entries are ordered and compared by
// Key alone, so two lines with the same key are duplicates whatever their labels.
type Entry struct {
	Key   int
	Label string
}

func (u *Entry) LessThan(o *Entry) bool {
	return u.Key < o.Key
}

func (u *Entry) Equals(o *Entry) bool {
	return u.Key == o.Key
}

func (u *Entry) String() string {
	return strconv.Itoa(u.Key) + ":" + u.Label
}

// SetData reads one line. Blank lines and lines not starting with an integer fail.
func (u *Entry) SetData(s *Trees.Stream) bool {
	line, ok := s.Line()
	if !ok {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	k, err := strconv.Atoi(fields[0])
	if err != nil {
		return false
	}
	u.Key, u.Label = k, strings.Join(fields[1:], " ")
	return true
}
