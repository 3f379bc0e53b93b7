package cssunit

import (
	"errors"
	"fmt"
	"strconv"

	"oss.terrastruct.com/util-go/xdefer"
)

// Parse reads a single dimension token such as "20px", "-1.5em" or "50%".
// A unitless number is only accepted when it is 0.
func Parse(s string) (_ LengthPercentage, err error) {
	defer xdefer.Errorf(&err, "failed to parse length %q", s)

	i := numberEnd(s)
	if i == 0 {
		return LengthPercentage{}, errors.New("expected a number")
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return LengthPercentage{}, err
	}

	switch suffix := s[i:]; suffix {
	case "%":
		return Percent(v), nil
	case "":
		if v != 0 {
			return LengthPercentage{}, errors.New("non-zero length requires a unit")
		}
		return Pixels(0), nil
	default:
		u, ok := UnitFromString(suffix)
		if !ok {
			return LengthPercentage{}, fmt.Errorf("unknown unit %q", suffix)
		}
		return FromLength(NewLength(v, u)), nil
	}
}

// numberEnd returns the length of the CSS number at the start of s, or 0.
func numberEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return 0
	}
	// 1e3 is an exponent, 1em is a unit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
