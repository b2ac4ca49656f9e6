package frame

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/framekit/frame/pkg/errors"
)

// StringMethods applies text operations element-wise over one text
// column. Null elements pass through unchanged; every operation returns
// a new one-column frame carrying the source column's name. Operations
// on a non-text column fail with a type error.
type StringMethods struct {
	df *DataFrame
}

// Str returns the string accessor for the frame
func (df *DataFrame) Str() *StringMethods {
	return &StringMethods{df: df}
}

// Capitalize title-cases the first character and lowercases the rest
func (sm *StringMethods) Capitalize(col string) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		r := []rune(strings.ToLower(s))
		if len(r) > 0 {
			r[0] = unicode.ToTitle(r[0])
		}
		return string(r), nil
	})
}

// Center pads the value on both sides to the given width; the optional
// fill character defaults to a space
func (sm *StringMethods) Center(col string, width int, fillchar ...string) (*DataFrame, error) {
	fill, err := parseFill(fillchar)
	if err != nil {
		return nil, err
	}
	return sm.applyString(col, func(s string) (string, error) {
		return center(s, width, fill), nil
	})
}

// Count returns the number of non-overlapping occurrences of sub,
// optionally restricted to the character range [start, stop)
func (sm *StringMethods) Count(col, sub string, bounds ...int) (*DataFrame, error) {
	sl, err := parseBounds(bounds)
	if err != nil {
		return nil, err
	}
	return sm.applyInt(col, func(s string) (int64, error) {
		sliced, _ := sl.apply(s)
		return int64(strings.Count(sliced, sub)), nil
	})
}

// EndsWith reports whether the value, optionally restricted to
// [start, stop), ends with suffix
func (sm *StringMethods) EndsWith(col, suffix string, bounds ...int) (*DataFrame, error) {
	sl, err := parseBounds(bounds)
	if err != nil {
		return nil, err
	}
	return sm.applyBool(col, func(s string) (bool, error) {
		sliced, _ := sl.apply(s)
		return strings.HasSuffix(sliced, suffix), nil
	})
}

// StartsWith reports whether the value, optionally restricted to
// [start, stop), starts with prefix
func (sm *StringMethods) StartsWith(col, prefix string, bounds ...int) (*DataFrame, error) {
	sl, err := parseBounds(bounds)
	if err != nil {
		return nil, err
	}
	return sm.applyBool(col, func(s string) (bool, error) {
		sliced, _ := sl.apply(s)
		return strings.HasPrefix(sliced, prefix), nil
	})
}

// Find returns the character index of the first occurrence of sub in
// the optional range, or -1 when absent. Indices are relative to the
// whole value, not the range.
func (sm *StringMethods) Find(col, sub string, bounds ...int) (*DataFrame, error) {
	sl, err := parseBounds(bounds)
	if err != nil {
		return nil, err
	}
	return sm.applyInt(col, func(s string) (int64, error) {
		return findRune(s, sub, sl), nil
	})
}

// Index is Find that fails with a lookup error when sub is absent from
// any non-null element
func (sm *StringMethods) Index(col, sub string, bounds ...int) (*DataFrame, error) {
	sl, err := parseBounds(bounds)
	if err != nil {
		return nil, err
	}
	return sm.applyInt(col, func(s string) (int64, error) {
		idx := findRune(s, sub, sl)
		if idx < 0 {
			return 0, errors.Newf(errors.ErrorTypeLookup, "substring %q not found", sub)
		}
		return idx, nil
	})
}

// Len returns the character count of each value
func (sm *StringMethods) Len(col string) (*DataFrame, error) {
	return sm.applyInt(col, func(s string) (int64, error) {
		return int64(utf8.RuneCountInString(s)), nil
	})
}

// Get returns the single character at position i; negative positions
// count from the end
func (sm *StringMethods) Get(col string, i int) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		r := []rune(s)
		idx := i
		if idx < 0 {
			idx += len(r)
		}
		if idx < 0 || idx >= len(r) {
			return "", errors.Newf(errors.ErrorTypeLookup,
				"character index %d out of range for length %d", i, len(r))
		}
		return string(r[idx]), nil
	})
}

// IsAlnum reports whether the value is non-empty and every character is
// alphanumeric
func (sm *StringMethods) IsAlnum(col string) (*DataFrame, error) {
	return sm.applyBool(col, predicate(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}))
}

// IsAlpha reports whether the value is non-empty and every character is
// a letter
func (sm *StringMethods) IsAlpha(col string) (*DataFrame, error) {
	return sm.applyBool(col, predicate(unicode.IsLetter))
}

// IsDecimal reports whether the value is non-empty and every character
// is a decimal digit
func (sm *StringMethods) IsDecimal(col string) (*DataFrame, error) {
	return sm.applyBool(col, predicate(func(r rune) bool {
		return unicode.Is(unicode.Nd, r)
	}))
}

// IsLower reports whether the value has at least one cased character
// and no uppercase ones
func (sm *StringMethods) IsLower(col string) (*DataFrame, error) {
	return sm.applyBool(col, func(s string) (bool, error) {
		hasCased := false
		for _, r := range s {
			if unicode.IsUpper(r) || unicode.IsTitle(r) {
				return false, nil
			}
			if unicode.IsLower(r) {
				hasCased = true
			}
		}
		return hasCased, nil
	})
}

// IsNumeric reports whether the value is non-empty and every character
// is numeric
func (sm *StringMethods) IsNumeric(col string) (*DataFrame, error) {
	return sm.applyBool(col, predicate(unicode.IsNumber))
}

// IsSpace reports whether the value is non-empty and every character is
// whitespace
func (sm *StringMethods) IsSpace(col string) (*DataFrame, error) {
	return sm.applyBool(col, predicate(unicode.IsSpace))
}

// IsTitle reports whether the value is title-cased: uppercase
// characters only start cased runs and lowercase never does
func (sm *StringMethods) IsTitle(col string) (*DataFrame, error) {
	return sm.applyBool(col, func(s string) (bool, error) {
		hasCased := false
		prevCased := false
		for _, r := range s {
			switch {
			case unicode.IsUpper(r) || unicode.IsTitle(r):
				if prevCased {
					return false, nil
				}
				hasCased = true
				prevCased = true
			case unicode.IsLower(r):
				if !prevCased {
					return false, nil
				}
				hasCased = true
				prevCased = true
			default:
				prevCased = false
			}
		}
		return hasCased, nil
	})
}

// IsUpper reports whether the value has at least one cased character
// and no lowercase ones
func (sm *StringMethods) IsUpper(col string) (*DataFrame, error) {
	return sm.applyBool(col, func(s string) (bool, error) {
		hasCased := false
		for _, r := range s {
			if unicode.IsLower(r) || unicode.IsTitle(r) {
				return false, nil
			}
			if unicode.IsUpper(r) {
				hasCased = true
			}
		}
		return hasCased, nil
	})
}

// LStrip trims leading characters; the optional cutset defaults to
// whitespace
func (sm *StringMethods) LStrip(col string, cutset ...string) (*DataFrame, error) {
	cut, err := parseCutset(cutset)
	if err != nil {
		return nil, err
	}
	return sm.applyString(col, func(s string) (string, error) {
		if cut == "" {
			return strings.TrimLeftFunc(s, unicode.IsSpace), nil
		}
		return strings.TrimLeft(s, cut), nil
	})
}

// RStrip trims trailing characters; the optional cutset defaults to
// whitespace
func (sm *StringMethods) RStrip(col string, cutset ...string) (*DataFrame, error) {
	cut, err := parseCutset(cutset)
	if err != nil {
		return nil, err
	}
	return sm.applyString(col, func(s string) (string, error) {
		if cut == "" {
			return strings.TrimRightFunc(s, unicode.IsSpace), nil
		}
		return strings.TrimRight(s, cut), nil
	})
}

// Strip trims leading and trailing characters; the optional cutset
// defaults to whitespace
func (sm *StringMethods) Strip(col string, cutset ...string) (*DataFrame, error) {
	cut, err := parseCutset(cutset)
	if err != nil {
		return nil, err
	}
	return sm.applyString(col, func(s string) (string, error) {
		if cut == "" {
			return strings.TrimSpace(s), nil
		}
		return strings.Trim(s, cut), nil
	})
}

// Replace substitutes occurrences of old with new; the optional count
// limits replacements and defaults to unlimited
func (sm *StringMethods) Replace(col, old, new string, count ...int) (*DataFrame, error) {
	n := -1
	switch len(count) {
	case 0:
	case 1:
		n = count[0]
	default:
		return nil, errors.New(errors.ErrorTypeShape, "at most one replacement count")
	}
	return sm.applyString(col, func(s string) (string, error) {
		return strings.Replace(s, old, new, n), nil
	})
}

// SwapCase swaps the case of every character
func (sm *StringMethods) SwapCase(col string) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		return strings.Map(func(r rune) rune {
			switch {
			case unicode.IsUpper(r) || unicode.IsTitle(r):
				return unicode.ToLower(r)
			case unicode.IsLower(r):
				return unicode.ToUpper(r)
			default:
				return r
			}
		}, s), nil
	})
}

// Title title-cases the first character of every cased run and
// lowercases the rest
func (sm *StringMethods) Title(col string) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		var b strings.Builder
		b.Grow(len(s))
		prevCased := false
		for _, r := range s {
			if isCased(r) {
				if prevCased {
					b.WriteRune(unicode.ToLower(r))
				} else {
					b.WriteRune(unicode.ToTitle(r))
				}
				prevCased = true
			} else {
				b.WriteRune(r)
				prevCased = false
			}
		}
		return b.String(), nil
	})
}

// Lower lowercases every character
func (sm *StringMethods) Lower(col string) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		return strings.ToLower(s), nil
	})
}

// Upper uppercases every character
func (sm *StringMethods) Upper(col string) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
}

// ZFill pads the value with leading zeros to the given width, after any
// leading sign
func (sm *StringMethods) ZFill(col string, width int) (*DataFrame, error) {
	return sm.applyString(col, func(s string) (string, error) {
		r := []rune(s)
		if len(r) >= width {
			return s, nil
		}
		pad := width - len(r)
		var b strings.Builder
		b.Grow(width)
		rest := r
		if len(r) > 0 && (r[0] == '+' || r[0] == '-') {
			b.WriteRune(r[0])
			rest = r[1:]
		}
		for i := 0; i < pad; i++ {
			b.WriteByte('0')
		}
		b.WriteString(string(rest))
		return b.String(), nil
	})
}

// Encode validates each value against the given encoding; the encoding
// defaults to utf-8 and the error mode to strict. Strict mode fails
// with a type error on invalid data, ignore drops invalid bytes, and
// replace substitutes the replacement character.
func (sm *StringMethods) Encode(col string, opts ...string) (*DataFrame, error) {
	encoding, mode := "utf-8", "strict"
	switch len(opts) {
	case 0:
	case 1:
		encoding = opts[0]
	case 2:
		encoding, mode = opts[0], opts[1]
	default:
		return nil, errors.New(errors.ErrorTypeShape, "at most an encoding and an error mode")
	}
	if encoding != "utf-8" && encoding != "utf8" {
		return nil, errors.Newf(errors.ErrorTypeMismatch, "unsupported encoding %q", encoding)
	}
	switch mode {
	case "strict", "ignore", "replace":
	default:
		return nil, errors.Newf(errors.ErrorTypeMismatch, "unsupported error mode %q", mode)
	}
	return sm.applyString(col, func(s string) (string, error) {
		if utf8.ValidString(s) {
			return s, nil
		}
		switch mode {
		case "ignore":
			return strings.ToValidUTF8(s, ""), nil
		case "replace":
			return strings.ToValidUTF8(s, string(utf8.RuneError)), nil
		default:
			return "", errors.New(errors.ErrorTypeMismatch, "invalid utf-8 data in strict mode")
		}
	})
}

// textColumn fetches the target column, requiring text kind
func (sm *StringMethods) textColumn(col string) (Column, error) {
	pos, ok := sm.df.position(col)
	if !ok {
		return Column{}, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", col)
	}
	c := sm.df.cols[pos]
	if c.kind != KindString {
		return Column{}, errors.Newf(errors.ErrorTypeMismatch,
			"the string accessor only works with text columns, %q is %s", col, c.kind)
	}
	return c, nil
}

func (sm *StringMethods) applyString(col string, fn func(string) (string, error)) (*DataFrame, error) {
	c, err := sm.textColumn(col)
	if err != nil {
		return nil, err
	}
	out := Column{name: c.name, kind: KindString, strs: make([]string, c.Len())}
	out.valid = copyValidity(c.valid)
	for i, s := range c.strs {
		if c.IsNull(i) {
			continue
		}
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		out.strs[i] = v
	}
	return &DataFrame{cols: []Column{out}}, nil
}

func (sm *StringMethods) applyInt(col string, fn func(string) (int64, error)) (*DataFrame, error) {
	c, err := sm.textColumn(col)
	if err != nil {
		return nil, err
	}
	out := Column{name: c.name, kind: KindInt, ints: make([]int64, c.Len())}
	out.valid = copyValidity(c.valid)
	for i, s := range c.strs {
		if c.IsNull(i) {
			continue
		}
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		out.ints[i] = v
	}
	return &DataFrame{cols: []Column{out}}, nil
}

func (sm *StringMethods) applyBool(col string, fn func(string) (bool, error)) (*DataFrame, error) {
	c, err := sm.textColumn(col)
	if err != nil {
		return nil, err
	}
	out := Column{name: c.name, kind: KindBool, bools: make([]bool, c.Len())}
	out.valid = copyValidity(c.valid)
	for i, s := range c.strs {
		if c.IsNull(i) {
			continue
		}
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		out.bools[i] = v
	}
	return &DataFrame{cols: []Column{out}}, nil
}

func copyValidity(valid []bool) []bool {
	if valid == nil {
		return nil
	}
	return append([]bool(nil), valid...)
}

// predicate lifts a per-character test into a non-empty-and-all check
func predicate(test func(rune) bool) func(string) (bool, error) {
	return func(s string) (bool, error) {
		if s == "" {
			return false, nil
		}
		for _, r := range s {
			if !test(r) {
				return false, nil
			}
		}
		return true, nil
	}
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// charSlice is an optional [start, stop) character range
type charSlice struct {
	start, stop       int
	hasStart, hasStop bool
}

// apply slices s by characters, returning the substring and the
// character offset where it begins
func (sl charSlice) apply(s string) (string, int) {
	if !sl.hasStart && !sl.hasStop {
		return s, 0
	}
	r := []rune(s)
	n := len(r)
	lo, hi := 0, n
	if sl.hasStart {
		lo = clampBound(sl.start, 1, n)
	}
	if sl.hasStop {
		hi = clampBound(sl.stop, 1, n)
	}
	if lo > hi {
		return "", lo
	}
	return string(r[lo:hi]), lo
}

func parseBounds(bounds []int) (charSlice, error) {
	var sl charSlice
	switch len(bounds) {
	case 0:
	case 1:
		sl.start, sl.hasStart = bounds[0], true
	case 2:
		sl.start, sl.hasStart = bounds[0], true
		sl.stop, sl.hasStop = bounds[1], true
	default:
		return charSlice{}, errors.New(errors.ErrorTypeShape, "at most a start and a stop bound")
	}
	return sl, nil
}

func parseFill(fillchar []string) (string, error) {
	switch len(fillchar) {
	case 0:
		return " ", nil
	case 1:
		if utf8.RuneCountInString(fillchar[0]) != 1 {
			return "", errors.New(errors.ErrorTypeMismatch, "the fill character must be exactly one character")
		}
		return fillchar[0], nil
	default:
		return "", errors.New(errors.ErrorTypeShape, "at most one fill character")
	}
}

func parseCutset(cutset []string) (string, error) {
	switch len(cutset) {
	case 0:
		return "", nil
	case 1:
		return cutset[0], nil
	default:
		return "", errors.New(errors.ErrorTypeShape, "at most one cutset")
	}
}

// center pads s on both sides to width characters; the extra character
// of an odd margin follows the str.center convention
func center(s string, width int, fill string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	marg := width - n
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, marg-left)
}

// findRune locates sub within the character range of s, returning the
// character index in the whole string or -1
func findRune(s, sub string, sl charSlice) int64 {
	sliced, offset := sl.apply(s)
	byteIdx := strings.Index(sliced, sub)
	if byteIdx < 0 {
		return -1
	}
	return int64(offset + utf8.RuneCountInString(sliced[:byteIdx]))
}
