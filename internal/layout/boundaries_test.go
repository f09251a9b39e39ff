package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func dims(pairs ...[2]int) []Dimension {
	out := make([]Dimension, len(pairs))
	for i, p := range pairs {
		out[i] = NewDimension(p[0], p[1])
	}
	return out
}

func TestTaken(t *testing.T) {
	type tc struct {
		dims []Dimension
		want int
	}

	tests := map[string]tc{
		"no dimensions":  {dims: nil, want: 1},
		"single zero":    {dims: dims([2]int{0, 1}), want: 2},
		"mixed minimums": {dims: dims([2]int{0, 3}, [2]int{2, 1}), want: 5},
		"negative min":   {dims: []Dimension{{Min: -3, Weight: 1}}, want: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Taken(tt.dims); got != tt.want {
				t.Errorf("Taken() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBoundaries(t *testing.T) {
	type tc struct {
		dims   []Dimension
		start  int
		length int
		want   []int
	}

	tests := map[string]tc{
		"weighted columns over width 20": {
			dims:   dims([2]int{0, 3}, [2]int{2, 1}),
			start:  0,
			length: 20,
			want:   []int{0, 12, 19},
		},
		"weighted columns with offset": {
			dims:   dims([2]int{0, 3}, [2]int{2, 1}),
			start:  5,
			length: 20,
			want:   []int{5, 17, 24},
		},
		"four equal rows over height 10": {
			dims:   dims([2]int{0, 1}, [2]int{0, 1}, [2]int{0, 1}, [2]int{0, 1}),
			start:  0,
			length: 10,
			want:   []int{0, 3, 5, 7, 9},
		},
		"exact fit": {
			dims:   dims([2]int{2, 1}, [2]int{3, 1}),
			start:  0,
			length: 8,
			want:   []int{0, 3, 7},
		},
		"too small keeps minimums": {
			dims:   dims([2]int{2, 1}, [2]int{3, 1}),
			start:  0,
			length: 5,
			want:   []int{0, 3, 7},
		},
		"zero weights leave space unassigned": {
			dims:   dims([2]int{1, 0}, [2]int{1, 0}),
			start:  0,
			length: 20,
			want:   []int{0, 2, 4},
		},
		"no dimensions": {
			dims:   nil,
			start:  3,
			length: 10,
			want:   []int{3},
		},
		"zero length": {
			dims:   dims([2]int{0, 1}),
			start:  2,
			length: 0,
			want:   []int{2, 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Boundaries(tt.dims, tt.start, tt.length)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Boundaries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoundaries_CountAndTrailingBorder(t *testing.T) {
	for n := 0; n <= 6; n++ {
		ds := make([]Dimension, n)
		for i := range ds {
			ds[i] = NewDimension(i%3, i%4)
		}
		for length := 0; length <= 40; length++ {
			got := Boundaries(ds, 1, length)
			if len(got) != n+1 {
				t.Fatalf("n=%d length=%d: got %d boundaries, want %d", n, length, len(got), n+1)
			}
			for i := 1; i < len(got); i++ {
				if got[i] <= got[i-1] {
					t.Fatalf("n=%d length=%d: boundaries not increasing: %v", n, length, got)
				}
			}

			weighted := false
			for _, d := range ds {
				weighted = weighted || d.Weight > 0
			}
			if weighted && length >= Taken(ds) {
				if last := got[len(got)-1]; last != 1+length-1 {
					t.Fatalf("n=%d length=%d: trailing border at %d, want %d", n, length, last, length)
				}
			}
		}
	}
}
