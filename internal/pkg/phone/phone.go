package phone

import "strings"

// Normalize rewrites raw into an E.164-like number using defaultCountryCode
// for numbers written in national format.
//
// The rules are applied in order, first match wins:
//  1. empty country code: raw is returned untouched
//  2. "00<cc>..." becomes "+<cc>..."
//  3. "<cc>..." without a leading plus gets one prepended
//  4. a leading "0" (national format) is replaced by "+<cc>"
//  5. anything else without a leading plus gets one prepended
//
// Whitespace, hyphens, and parentheses are stripped before matching.
func Normalize(raw, defaultCountryCode string) string {
	if defaultCountryCode == "" {
		return raw
	}

	number := clean(raw)
	cc := strings.TrimPrefix(defaultCountryCode, "+")

	switch {
	case strings.HasPrefix(number, "00"+cc):
		return "+" + cc + strings.TrimPrefix(number, "00"+cc)
	case strings.HasPrefix(number, cc) && !strings.HasPrefix(number, "+"):
		return "+" + number
	case strings.HasPrefix(number, "0") && !strings.HasPrefix(number, "+"):
		return "+" + cc + number[1:]
	case !strings.HasPrefix(number, "+"):
		return "+" + number
	default:
		return number
	}
}

func clean(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	for _, r := range raw {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '(', ')':
			continue
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
