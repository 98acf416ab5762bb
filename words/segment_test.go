package words

import (
	"fmt"
	"testing"
)

func TestSplitGroups(t *testing.T) {
	t.Parallel()

	cases := []struct {
		digits string
		size   int
		want   []int64
	}{
		{"0", 3, []int64{0}},
		{"7", 3, []int64{7}},
		{"999", 3, []int64{999}},
		{"1000", 3, []int64{1, 0}},
		{"1234567", 3, []int64{1, 234, 567}},
		{"1000000001", 3, []int64{1, 0, 0, 1}},
		{"12345", 4, []int64{1, 2345}},
		{"123456789", 4, []int64{1, 2345, 6789}},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%s/%d", tt.digits, tt.size), func(t *testing.T) {
			t.Parallel()
			got := splitGroups(tt.digits, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("splitGroups(%q, %d) = %v, want %v", tt.digits, tt.size, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitGroups(%q, %d)[%d] = %d, want %d", tt.digits, tt.size, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestSplitGroupsRecompose verifies the groups reassemble into the value
// they were split from.
func TestSplitGroupsRecompose(t *testing.T) {
	t.Parallel()

	for _, digits := range []string{"1", "42", "999", "1000", "10001", "987654321", "120034005600"} {
		for _, size := range []int{3, 4} {
			mult := int64(1)
			for i := 0; i < size; i++ {
				mult *= 10
			}

			var total int64
			for _, g := range splitGroups(digits, size) {
				total = total*mult + g
			}
			if want := groupValue(digits); total != want {
				t.Errorf("splitGroups(%q, %d) recomposes to %d, want %d", digits, size, total, want)
			}
		}
	}
}
