package cut

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Span is a half-open, zero-based position range [Low, High).
type Span struct {
	Low  int
	High int
}

// PositionList is the parsed form of a selection list such as "1,3-5".
type PositionList []Span

var rangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

// parseIndex parses a single one-based position into a zero-based index.
// A leading "+", a non-number, or zero are all rejected with the same
// message, quoting the offending token.
func parseIndex(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("illegal list value: %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("illegal list value: %q", s)
	}
	return n - 1, nil
}

// ParsePositions parses a comma-separated selection list. Each item is
// either a single position N or a range N-M with N strictly lower than M.
func ParsePositions(list string) (PositionList, error) {
	if list == "" {
		return nil, fmt.Errorf("illegal list value: %q", list)
	}

	var positions PositionList
	for _, item := range strings.Split(list, ",") {
		if m := rangeRe.FindStringSubmatch(item); m != nil {
			low, err := parseIndex(m[1])
			if err != nil {
				return nil, err
			}
			high, err := parseIndex(m[2])
			if err != nil {
				return nil, err
			}
			if low >= high {
				return nil, fmt.Errorf(
					"First number in range (%d) must be lower than second number (%d)",
					low+1, high+1,
				)
			}
			positions = append(positions, Span{Low: low, High: high + 1})
			continue
		}

		idx, err := parseIndex(item)
		if err != nil {
			return nil, err
		}
		positions = append(positions, Span{Low: idx, High: idx + 1})
	}
	return positions, nil
}
