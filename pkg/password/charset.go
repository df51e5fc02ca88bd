// pkg/password/charset.go

package password

import "strings"

// Class identifies one of the four character classes a password draws from.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Special
)

// Classes lists every class in seeding order.
var Classes = []Class{Lowercase, Uppercase, Digit, Special}

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	// SpecialChars is the full ASCII punctuation set.
	SpecialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// AmbiguousChars are dropped from every class when ExcludeAmbiguous is set.
	AmbiguousChars = "0O1l"
)

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// chars returns the unfiltered charset of the class.
func (c Class) chars() string {
	switch c {
	case Lowercase:
		return LowercaseChars
	case Uppercase:
		return UppercaseChars
	case Digit:
		return DigitChars
	case Special:
		return SpecialChars
	default:
		return ""
	}
}

// Active reports whether the class contributes to the alphabet under opts.
// Lowercase is always active.
func (c Class) Active(opts Options) bool {
	switch c {
	case Lowercase:
		return true
	case Uppercase:
		return opts.UseUppercase
	case Digit:
		return opts.UseDigits
	case Special:
		return opts.UseSpecial
	default:
		return false
	}
}

// FilterAmbiguous removes every ambiguous character from s, keeping the
// order of what remains. Applying it twice gives the same result as once.
func FilterAmbiguous(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, s)
}

// Charset returns the characters class c contributes under opts, or "" if
// the class is inactive.
func Charset(c Class, opts Options) string {
	if !c.Active(opts) {
		return ""
	}
	s := c.chars()
	if opts.ExcludeAmbiguous {
		s = FilterAmbiguous(s)
	}
	return s
}

// Alphabet is the concatenation of every active, filtered class charset.
func Alphabet(opts Options) string {
	var sb strings.Builder
	for _, c := range Classes {
		sb.WriteString(Charset(c, opts))
	}
	return sb.String()
}

// Classify reports which class r belongs to. Classes are disjoint.
func Classify(r rune) (Class, bool) {
	for _, c := range Classes {
		if strings.ContainsRune(c.chars(), r) {
			return c, true
		}
	}
	return 0, false
}

// Composition counts the characters of pw per class. Characters outside
// every class are not counted.
func Composition(pw string) map[Class]int {
	counts := make(map[Class]int, len(Classes))
	for _, r := range pw {
		if c, ok := Classify(r); ok {
			counts[c]++
		}
	}
	return counts
}
