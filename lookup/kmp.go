package lookup

// Pattern is a compiled substring query: the needle plus its KMP failure
// function. A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	needle string
	fail   []int // fail[i] = length of the longest proper border of needle[:i+1]
}

// Compile builds the failure function of needle.
// Complexity: O(len(needle)).
func Compile(needle string) Pattern {
	fail := make([]int, len(needle))
	k := 0
	for i := 1; i < len(needle); i++ {
		for k > 0 && needle[i] != needle[k] {
			k = fail[k-1]
		}
		if needle[i] == needle[k] {
			k++
		}
		fail[i] = k
	}

	return Pattern{needle: needle, fail: fail}
}

// Needle returns the compiled query.
func (p Pattern) Needle() string { return p.needle }

// In reports whether the needle occurs in text as a contiguous,
// case-sensitive byte substring. The empty needle matches nothing.
// Complexity: O(len(text)).
func (p Pattern) In(text string) bool {
	m := len(p.needle)
	if m == 0 || m > len(text) {
		return false
	}
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != p.needle[k] {
			k = p.fail[k-1]
		}
		if text[i] == p.needle[k] {
			k++
		}
		if k == m {
			return true
		}
	}

	return false
}
