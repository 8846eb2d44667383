package scratch

import (
	"errors"
	"strconv"
	"unsafe"
)

// ErrFull is returned when an append would exceed the arena's capacity.
var ErrFull = errors.New("scratch: arena full")

// Arena is a fixed-capacity byte buffer for strings produced during a frame.
// It never reallocates, so string views handed out stay valid until Reset.
// Single-threaded usage only.
type Arena struct {
	buf []byte
}

// New allocates the arena once. Reset it every frame.
func New(capacity int) *Arena {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Arena{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
// Every view returned since the previous Reset becomes invalid.
func (a *Arena) Reset() { a.buf = a.buf[:0] }

func (a *Arena) Cap() int { return cap(a.buf) }
func (a *Arena) Len() int { return len(a.buf) }

// Mark returns a bookmark to later slice the output.
func (a *Arena) Mark() int { return len(a.buf) }

// StringViewFrom ZERO-COPY: string view into the buffer since mark.
// Valid only until the next Reset.
func (a *Arena) StringViewFrom(mark int) string {
	b := a.buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

func (a *Arena) push(b []byte) (string, error) {
	if len(a.buf)+len(b) > cap(a.buf) {
		return "", ErrFull
	}
	mark := len(a.buf)
	a.buf = append(a.buf, b...)
	return a.StringViewFrom(mark), nil
}

// Float appends v with prec digits after the decimal point.
// Example: Float(3.14159, 2) -> "3.14"
func (a *Arena) Float(v float64, prec int) (string, error) {
	var tmp [64]byte
	return a.push(strconv.AppendFloat(tmp[:0], v, 'f', prec, 64))
}

// Int appends a base-10 integer.
func (a *Arena) Int(v int) (string, error) {
	var tmp [24]byte
	return a.push(strconv.AppendInt(tmp[:0], int64(v), 10))
}

// ----- Minimal % formatter (no fmt, no reflection) -----
// Supports a tiny subset: %s %d %x %f (with .prec) %%. A verb without an
// argument prints %!d(MISSING) the way fmt does.
//
//	s, err := arena.Sprintf("Mouse (%d, %d)", x, y)
//
// Boxing the variadic args may still allocate at the call site; the output
// itself lives in the arena.
func (a *Arena) Sprintf(format string, args ...any) (string, error) {
	var ai int
	mark := len(a.buf)
	fail := func() (string, error) {
		a.buf = a.buf[:mark]
		return "", ErrFull
	}
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			if len(a.buf) == cap(a.buf) {
				return fail()
			}
			a.buf = append(a.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			if len(a.buf) == cap(a.buf) {
				return fail()
			}
			a.buf = append(a.buf, '%')
			i++
			continue
		}
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = parseUint(format[start:i])
		}
		if i >= len(format) {
			// Dangling verb, as fmt prints it.
			if len(a.buf)+len("%!(NOVERB)") > cap(a.buf) {
				return fail()
			}
			a.buf = append(a.buf, "%!(NOVERB)"...)
			break
		}
		var tmp [64]byte
		var out []byte
		if ai >= len(args) {
			out = append(append(append(tmp[:0], "%!"...), format[i]), "(MISSING)"...)
			if len(a.buf)+len(out) > cap(a.buf) {
				return fail()
			}
			a.buf = append(a.buf, out...)
			continue
		}
		switch format[i] {
		case 's':
			s, _ := args[ai].(string)
			if len(a.buf)+len(s) > cap(a.buf) {
				return fail()
			}
			a.buf = append(a.buf, s...)
		case 'd':
			out = strconv.AppendInt(tmp[:0], toInt64(args[ai]), 10)
		case 'x':
			out = strconv.AppendUint(tmp[:0], uint64(toInt64(args[ai])), 16)
		case 'f':
			p := 3
			if prec >= 0 {
				p = prec
			}
			out = strconv.AppendFloat(tmp[:0], toFloat64(args[ai]), 'f', p, 64)
		default:
			out = append(tmp[:0], '%', format[i])
		}
		if len(a.buf)+len(out) > cap(a.buf) {
			return fail()
		}
		a.buf = append(a.buf, out...)
		ai++
	}
	return a.StringViewFrom(mark), nil
}

func parseUint(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
