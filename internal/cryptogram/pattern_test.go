package cryptogram

import "testing"

func TestPattern(test *testing.T) {
	cases := map[string]string{
		"deed":   "abba",
		"letter": "abccbd",
		"a":      "a",
		"cat":    "abc",
		"noon":   "abba",
		"peep":   "abba",
	}

	for input, expected := range cases {
		actual := Pattern(input)
		if actual != expected {
			test.Errorf("Pattern(%q) = %q, expected %q", input, actual, expected)
		}
	}
}

func TestPatternEquivalenceIsBijective(test *testing.T) {
	words := []string{"noon", "peep", "deed", "cat", "dog", "letter"}

	for _, u := range words {
		for _, v := range words {
			samePattern := Pattern(u) == Pattern(v)
			bijective := hasBijection(u, v)
			if samePattern != bijective {
				test.Errorf("Pattern(%q)==Pattern(%q) is %v but bijection exists is %v", u, v, samePattern, bijective)
			}
		}
	}
}

// hasBijection checks whether there is a one-to-one letter mapping from u
// onto v, used as the reference definition pattern equivalence must
// agree with.
func hasBijection(u, v string) bool {
	if len(u) != len(v) {
		return false
	}
	forward := make(map[byte]byte)
	backward := make(map[byte]byte)
	for i := 0; i < len(u); i++ {
		a, b := u[i], v[i]
		if mapped, ok := forward[a]; ok {
			if mapped != b {
				return false
			}
		} else {
			forward[a] = b
		}
		if mapped, ok := backward[b]; ok {
			if mapped != a {
				return false
			}
		} else {
			backward[b] = a
		}
	}
	return true
}
