package array

import (
	"fmt"
	"strings"
)

// Bounds is one dimension's inclusive index range [Lo, Hi].
// Hi == Lo-1 describes an empty dimension.
type Bounds struct {
	Lo, Hi int
}

// Len returns the zero-based bounds of a dimension holding n elements.
func Len(n int) Bounds {
	return Bounds{Lo: 0, Hi: n - 1}
}

func (b Bounds) Contains(i int) bool {
	return b.Lo <= i && i <= b.Hi
}

func (b Bounds) Len() int {
	return b.Hi - b.Lo + 1
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.Lo, b.Hi)
}

func formatBounds(bs []Bounds) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = b.String()
	}
	return strings.Join(parts, " x ")
}
