package domain

// LocatorLength is the length of a canonical (subsquare precision) locator.
const LocatorLength = 6

// Appended to short inputs so a 4-character square resolves to subsquare LL.
const locatorFiller = "LL"

// Represents a canonical Maidenhead locator as its three character pairs.
// Within each pair the first character encodes longitude and the second latitude.
// Values are only produced by ParseLocator and always satisfy the grammar
// [A-R]{2}[0-9]{2}[A-X]{2}.
type Locator struct {
	Field     [2]byte
	Square    [2]byte
	Subsquare [2]byte
}

// NormalizeLocator returns the canonical 6-character form of input.
//
// Input past LocatorLength is dropped, letters are upper-cased and inputs shorter
// than LocatorLength receive up to two filler characters. Anything that still
// does not match the locator grammar is rejected with KindInvalidLocator.
func NormalizeLocator(input string) (string, error) {
	s := input
	if len(s) > LocatorLength {
		s = s[:LocatorLength]
	}

	b := make([]byte, 0, LocatorLength)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b = append(b, c)
	}

	if missing := LocatorLength - len(b); missing > 0 {
		filler := locatorFiller
		if missing < len(filler) {
			filler = filler[:missing]
		}
		b = append(b, filler...)
	}

	if !isCanonical(b) {
		return "", invalidLocator(input)
	}
	return string(b), nil
}

// ParseLocator normalizes input and splits it into its character pairs.
func ParseLocator(input string) (Locator, error) {
	s, err := NormalizeLocator(input)
	if err != nil {
		return Locator{}, err
	}

	return Locator{
		Field:     [2]byte{s[0], s[1]},
		Square:    [2]byte{s[2], s[3]},
		Subsquare: [2]byte{s[4], s[5]},
	}, nil
}

func (l Locator) String() string {
	return string([]byte{
		l.Field[0], l.Field[1],
		l.Square[0], l.Square[1],
		l.Subsquare[0], l.Subsquare[1],
	})
}

// Zero-based indexes of each character within its alphabet.

func (l Locator) FieldLon() int     { return int(l.Field[0] - 'A') }
func (l Locator) FieldLat() int     { return int(l.Field[1] - 'A') }
func (l Locator) SquareLon() int    { return int(l.Square[0] - '0') }
func (l Locator) SquareLat() int    { return int(l.Square[1] - '0') }
func (l Locator) SubsquareLon() int { return int(l.Subsquare[0] - 'A') }
func (l Locator) SubsquareLat() int { return int(l.Subsquare[1] - 'A') }

func isCanonical(b []byte) bool {
	if len(b) != LocatorLength {
		return false
	}

	for i, c := range b {
		var lo, hi byte
		switch i {
		case 0, 1:
			lo, hi = 'A', 'R'
		case 2, 3:
			lo, hi = '0', '9'
		default:
			lo, hi = 'A', 'X'
		}
		if c < lo || c > hi {
			return false
		}
	}
	return true
}
