package argv

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Built-in value parsers. Each satisfies the ValueParser contract: raw
// string in, typed value or rejection out. The engine reports rejections
// as invalid-option-value errors; it never range-checks beyond this.

// ParseString binds the raw string unchanged. It never rejects.
func ParseString(raw string) (any, error) {
	return raw, nil
}

// ParseBool accepts 1/t/true (any case) as true; everything else is false.
// Presence-only flags bind "true" through this parser.
func ParseBool(raw string) (any, error) {
	b := []byte(raw)
	if len(b) == 1 && (b[0] == '1' || b[0] == 't' || b[0] == 'T') {
		return true, nil
	}
	if len(b) == 4 &&
		(b[0] == 't' || b[0] == 'T') &&
		(b[1] == 'r' || b[1] == 'R') &&
		(b[2] == 'u' || b[2] == 'U') &&
		(b[3] == 'e' || b[3] == 'E') {
		return true, nil
	}
	return false, nil
}

// ParseInt parses a decimal or 0x-prefixed hex integer with overflow
// detection. The hex form is transparent to the caller.
func ParseInt(raw string) (any, error) {
	v, err := parseIntString(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseIntString(raw string) (int, error) {
	b := []byte(raw)
	if len(b) == 0 {
		return 0, errors.New("empty integer")
	}

	negative := false
	start := 0
	switch b[0] {
	case '-':
		negative = true
		start = 1
	case '+':
		start = 1
	}
	if start == len(b) {
		return 0, errors.New("invalid integer")
	}

	rest := b[start:]
	var (
		result int
		err    error
	)
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		result, err = parseHexDigits(rest[2:])
	} else {
		result, err = parseDecimalDigits(rest)
	}
	if err != nil {
		return 0, err
	}
	if negative {
		result = -result
	}
	return result, nil
}

// parseDecimalDigits builds the number with ASCII math: '8' - '0' = 8.
func parseDecimalDigits(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.New("empty integer")
	}
	result := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return 0, errors.New("invalid decimal character")
		}
		digit := int(c - '0')
		if result > (math.MaxInt-digit)/10 {
			return 0, errors.New("integer overflow")
		}
		result = result*10 + digit
	}
	return result, nil
}

func parseHexDigits(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.New("empty hex value")
	}
	result := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		var digit int
		switch {
		case c >= '0' && c <= '9':
			digit = int(c - '0')
		case c >= 'A' && c <= 'F':
			digit = int(c - 'A' + 10)
		case c >= 'a' && c <= 'f':
			digit = int(c - 'a' + 10)
		default:
			return 0, errors.New("invalid hex character")
		}
		if result > (math.MaxInt-digit)/16 {
			return 0, errors.New("hex integer overflow")
		}
		result = result*16 + digit
	}
	return result, nil
}

// ParseFloat parses a plain decimal float like "3.14". Exponent notation is
// not part of the accepted shape.
func ParseFloat(raw string) (any, error) {
	b := []byte(raw)
	if len(b) == 0 {
		return nil, errors.New("empty float")
	}

	result := 0.0
	decimal := 0.0
	decimalPlace := 1.0
	negative := false
	afterDecimal := false
	sawDigit := false

	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == '-' && i == 0 {
			negative = true
			continue
		}
		if c == '.' {
			if afterDecimal {
				return nil, errors.New("multiple decimal points")
			}
			afterDecimal = true
			continue
		}
		if c < '0' || c > '9' {
			return nil, errors.New("invalid float character")
		}
		sawDigit = true
		digit := float64(c - '0')
		if afterDecimal {
			decimalPlace *= 10.0
			decimal += digit / decimalPlace
		} else {
			result = result*10.0 + digit
		}
	}
	if !sawDigit {
		return nil, errors.New("invalid float")
	}

	result += decimal
	if negative {
		result = -result
	}
	return result, nil
}

// ParseDuration parses a time.Duration. Accepted shapes: colon forms
// ("05:30" minutes:seconds, "01:30:15" hours:minutes:seconds), extended
// single units ("2d", "1w", "3M", "1Y"), and the word-unit form
// ("1h30m15s", "3 sec", "10 minutes").
func ParseDuration(raw string) (any, error) {
	b := []byte(raw)
	if len(b) == 0 {
		return nil, errors.New("empty duration")
	}

	if countByte(b, ':') > 0 {
		return parseColonDuration(b)
	}
	if d, ok := parseExtendedDuration(b); ok {
		return d, nil
	}
	return parseUnitDuration(b)
}

func countByte(b []byte, target byte) int {
	count := 0
	for i := 0; i < len(b); i++ {
		if b[i] == target {
			count++
		}
	}
	return count
}

func indexByte(b []byte, target byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == target {
			return i
		}
	}
	return -1
}

func parseColonDuration(b []byte) (time.Duration, error) {
	switch countByte(b, ':') {
	case 1:
		colon := indexByte(b, ':')
		minutes, err := parseDecimalDigits(b[:colon])
		if err != nil {
			return 0, errors.New("invalid minutes")
		}
		seconds, err := parseDecimalDigits(b[colon+1:])
		if err != nil {
			return 0, errors.New("invalid seconds")
		}
		return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
	case 2:
		first := indexByte(b, ':')
		second := indexByte(b[first+1:], ':') + first + 1
		hours, err := parseDecimalDigits(b[:first])
		if err != nil {
			return 0, errors.New("invalid hours")
		}
		minutes, err := parseDecimalDigits(b[first+1 : second])
		if err != nil {
			return 0, errors.New("invalid minutes")
		}
		seconds, err := parseDecimalDigits(b[second+1:])
		if err != nil {
			return 0, errors.New("invalid seconds")
		}
		return time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second, nil
	}
	return 0, errors.New("too many colons in duration")
}

// parseExtendedDuration handles day/week/month/year single-unit forms.
// Months are 30 days and years 365; lowercase 'm' stays a minute and falls
// through to the unit parser.
func parseExtendedDuration(b []byte) (time.Duration, bool) {
	if len(b) < 2 {
		return 0, false
	}
	last := b[len(b)-1]
	unit := last
	if unit >= 'A' && unit <= 'Z' {
		unit += 'a' - 'A'
	}

	var multiplier time.Duration
	switch unit {
	case 'd':
		multiplier = 24 * time.Hour
	case 'w':
		multiplier = 7 * 24 * time.Hour
	case 'm':
		if last != 'M' {
			return 0, false
		}
		multiplier = 30 * 24 * time.Hour
	case 'y':
		multiplier = 365 * 24 * time.Hour
	default:
		return 0, false
	}

	number, err := parseDecimalDigits(b[:len(b)-1])
	if err != nil {
		return 0, false
	}
	return time.Duration(number) * multiplier, true
}

// parseUnitDuration walks number/unit pairs: "1h30m15s", "3 sec".
func parseUnitDuration(b []byte) (time.Duration, error) {
	var result time.Duration
	var current int
	hasNumber := false
	i := 0

	for i < len(b) {
		if b[i] == ' ' || b[i] == '\t' {
			i++
			continue
		}
		if b[i] >= '0' && b[i] <= '9' {
			current = 0
			hasNumber = true
			for i < len(b) && b[i] >= '0' && b[i] <= '9' {
				current = current*10 + int(b[i]-'0')
				i++
			}
			continue
		}
		if !hasNumber {
			return 0, errors.New("number expected before duration unit")
		}
		unit, consumed := parseTimeUnit(b[i:])
		if consumed == 0 {
			return 0, errors.New("invalid duration unit")
		}
		result += time.Duration(current) * unit
		i += consumed
		hasNumber = false
		current = 0
	}
	if hasNumber {
		return 0, errors.New("missing unit after number")
	}
	return result, nil
}

//nolint:gocyclo // compact branching over unit spellings
func parseTimeUnit(b []byte) (time.Duration, int) {
	if len(b) == 0 {
		return 0, 0
	}
	first := b[0]
	if first >= 'A' && first <= 'Z' {
		first += 'a' - 'A'
	}

	switch first {
	case 'n':
		if len(b) >= 2 && (b[1] == 's' || b[1] == 'S') {
			return time.Nanosecond, 2
		}
	case 'u':
		if len(b) >= 2 && (b[1] == 's' || b[1] == 'S') {
			return time.Microsecond, 2
		}
	case 0xce: // μ in UTF-8
		if len(b) >= 3 && b[1] == 0xbc && (b[2] == 's' || b[2] == 'S') {
			return time.Microsecond, 3
		}
	case 'm':
		if len(b) >= 2 && (b[1] == 's' || b[1] == 'S') {
			return time.Millisecond, 2
		}
		if len(b) >= 3 && (b[1] == 'i' || b[1] == 'I') && (b[2] == 'n' || b[2] == 'N') {
			if len(b) >= 6 && matchesWord(b[3:], "ute") {
				if len(b) >= 7 && (b[6] == 's' || b[6] == 'S') {
					return time.Minute, 7
				}
				return time.Minute, 6
			}
			return time.Minute, 3
		}
		return time.Minute, 1
	case 's':
		if len(b) >= 3 && (b[1] == 'e' || b[1] == 'E') && (b[2] == 'c' || b[2] == 'C') {
			if len(b) >= 6 && matchesWord(b[3:], "ond") {
				if len(b) >= 7 && (b[6] == 's' || b[6] == 'S') {
					return time.Second, 7
				}
				return time.Second, 6
			}
			return time.Second, 3
		}
		return time.Second, 1
	case 'h':
		if len(b) >= 4 && matchesWord(b[1:], "our") {
			if len(b) >= 5 && (b[4] == 's' || b[4] == 'S') {
				return time.Hour, 5
			}
			return time.Hour, 4
		}
		return time.Hour, 1
	}
	return 0, 0
}

// matchesWord compares b against the lowercase word case-insensitively.
func matchesWord(b []byte, word string) bool {
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

// List builds a parser that splits the raw value on sep and converts each
// element with elem. A nil elem binds the raw pieces.
func List(sep string, elem ValueParser) ValueParser {
	return func(raw string) (any, error) {
		parts := strings.Split(raw, sep)
		if elem == nil {
			return parts, nil
		}
		out := make([]any, 0, len(parts))
		for _, part := range parts {
			v, err := elem(part)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// ParseStringList splits a comma-separated value into []string.
func ParseStringList(raw string) (any, error) {
	return strings.Split(raw, ","), nil
}

// ParseIntList splits a comma-separated value into []int.
func ParseIntList(raw string) (any, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := parseIntString(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
