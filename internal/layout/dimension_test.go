package layout

import "testing"

func TestNewDimension_Clamps(t *testing.T) {
	type tc struct {
		minSize, weight int
		want            Dimension
	}

	tests := map[string]tc{
		"in range":        {minSize: 3, weight: 2, want: Dimension{Min: 3, Weight: 2}},
		"negative min":    {minSize: -1, weight: 2, want: Dimension{Min: 0, Weight: 2}},
		"negative weight": {minSize: 4, weight: -7, want: Dimension{Min: 4, Weight: 0}},
		"too large":       {minSize: 1 << 20, weight: 1 << 20, want: Dimension{Min: MaxCells, Weight: MaxCells}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewDimension(tt.minSize, tt.weight); got != tt.want {
				t.Errorf("NewDimension(%d, %d) = %+v, want %+v", tt.minSize, tt.weight, got, tt.want)
			}
		})
	}
}

func TestDimension_Reserved(t *testing.T) {
	if got := (Dimension{Min: 0}).Reserved(); got != 1 {
		t.Errorf("Reserved() = %d, want 1", got)
	}
	if got := (Dimension{Min: 5, Weight: 9}).Reserved(); got != 6 {
		t.Errorf("Reserved() = %d, want 6", got)
	}
}
