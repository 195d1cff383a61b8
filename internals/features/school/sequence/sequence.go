// Package sequence allocates the human-readable codes and numbers
// (D1, L100, T1000, student 1000). Allocation is advisory: the caller still
// creates the record, and a concurrent caller computing the same value loses
// at insert time on the uniqueness constraint.
package sequence

import (
	"regexp"
	"strconv"
)

// Kind describes one allocator: the visible prefix and the value handed out
// when no matching code exists yet.
type Kind struct {
	Prefix string
	Start  int
}

var (
	Department = Kind{Prefix: "D", Start: 1}
	Lesson     = Kind{Prefix: "L", Start: 100}
	Teacher    = Kind{Prefix: "T", Start: 1000}
	Student    = Kind{Prefix: "", Start: 1000}
)

// Next scans existing codes for ^<prefix>(\d+)$ and returns
// <prefix><max+1>, or <prefix><start> when nothing matches. Codes with a
// foreign shape are ignored.
func (k Kind) Next(codes []string) string {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(k.Prefix) + `(\d+)$`)

	max := 0
	found := false
	for _, code := range codes {
		m := re.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = true
		if n > max {
			max = n
		}
	}

	if !found {
		return k.Prefix + strconv.Itoa(k.Start)
	}
	return k.Prefix + strconv.Itoa(max+1)
}
