package injection

import (
	"encoding/base64"
	"strconv"
)

/*
BoolText returns an Injection of booleans into the texts "true"
and "false". Decoding any other text fails with an *InversionFailure.
*/
func BoolText() Injection[bool, string] {
	return New(
		func(b bool) (string, error) {
			if b {
				return "true", nil
			}
			return "false", nil
		},
		func(s string) (bool, error) {
			switch s {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, &InversionFailure{Input: s, Target: "bool"}
		},
	)
}

// StringText returns the identity Injection on strings.
func StringText() Injection[string, string] {
	return New(
		func(s string) (string, error) { return s, nil },
		func(s string) (string, error) { return s, nil },
	)
}

/*
IntText returns an Injection of int64 values into their base 10
representation. Decoding fails with an *InversionFailure on texts
that are not the canonical representation of an int64, so "007"
or "+7" are rejected.
*/
func IntText() Injection[int64, string] {
	return New(
		func(i int64) (string, error) {
			return strconv.FormatInt(i, 10), nil
		},
		func(s string) (int64, error) {
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil || strconv.FormatInt(i, 10) != s {
				return 0, &InversionFailure{Input: s, Target: "int64"}
			}
			return i, nil
		},
	)
}

/*
Float64Text returns an Injection of float64 values into the shortest
decimal representation that parses back to the same value.
*/
func Float64Text() Injection[float64, string] {
	return New(
		func(f float64) (string, error) {
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		},
		func(s string) (float64, error) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil || strconv.FormatFloat(f, 'g', -1, 64) != s {
				return 0, &InversionFailure{Input: s, Target: "float64"}
			}
			return f, nil
		},
	)
}

/*
Base64 returns an Injection of byte slices into text using the
standard padded base64 alphabet. Nothing but the encoded bytes is
written.
*/
func Base64() Injection[[]byte, string] {
	return New(
		func(b []byte) (string, error) {
			return base64.StdEncoding.EncodeToString(b), nil
		},
		func(s string) ([]byte, error) {
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, &InversionFailure{Input: s, Target: "base64 bytes"}
			}
			return b, nil
		},
	)
}

// StringBytes returns an Injection of strings into the bytes
// that make them up.
func StringBytes() Injection[string, []byte] {
	return New(
		func(s string) ([]byte, error) { return []byte(s), nil },
		func(b []byte) (string, error) { return string(b), nil },
	)
}
