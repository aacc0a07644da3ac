package geometry

import "testing"

func TestDistributeEvenly(t *testing.T) {
	tests := []struct {
		name  string
		total int
		count int
		want  []int
	}{
		{name: "exact division", total: 1920, count: 4, want: []int{480, 480, 480, 480}},
		{name: "remainder to first parts", total: 1000, count: 3, want: []int{334, 333, 333}},
		{name: "single part", total: 777, count: 1, want: []int{777}},
		{name: "more parts than pixels", total: 2, count: 3, want: []int{1, 1, 0}},
		{name: "zero count", total: 100, count: 0, want: nil},
		{name: "negative count", total: 100, count: -1, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeEvenly(tt.total, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDistributeEvenlyExactness(t *testing.T) {
	// Every split must sum to exactly the total, each part within 1 of
	// total/count.
	for total := 1; total < 500; total += 7 {
		for count := 1; count <= 12; count++ {
			parts := DistributeEvenly(total, count)
			sum := 0
			for _, p := range parts {
				sum += p
				if diff := p - total/count; diff < 0 || diff > 1 {
					t.Fatalf("DistributeEvenly(%d, %d): part %d deviates by %d", total, count, p, diff)
				}
			}
			if sum != total {
				t.Fatalf("DistributeEvenly(%d, %d) sums to %d", total, count, sum)
			}
		}
	}
}

func TestDistributeWithMinimums(t *testing.T) {
	tests := []struct {
		name  string
		total int
		count int
		gap   int
		mins  []int
		want  []int
	}{
		{
			name: "satisfiable spreads surplus evenly",
			total: 768, count: 2, gap: 0, mins: []int{100, 100},
			want: []int{384, 384},
		},
		{
			name: "satisfiable with gap",
			total: 110, count: 2, gap: 10, mins: []int{40, 40},
			want: []int{50, 50},
		},
		{
			name: "nil minimums degrade to even",
			total: 100, count: 3, gap: 5, mins: nil,
			want: []int{30, 30, 30},
		},
		{
			name: "unsatisfiable proportional",
			total: 100, count: 3, gap: 5, mins: []int{50, 60, 70},
			want: []int{25, 30, 35},
		},
		{
			name: "unsatisfiable truncation remainder settled",
			total: 100, count: 3, gap: 0, mins: []int{33, 33, 35},
			want: []int{33, 33, 34},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeWithMinimums(tt.total, tt.count, tt.gap, tt.mins)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDistributeWithMinimumsExactSum(t *testing.T) {
	// The proportional fallback truncates per item; the remainder must still
	// be settled so the parts sum to exactly the available span whenever at
	// least count pixels are available.
	mins := [][]int{
		{50, 60, 70},
		{1, 1, 1000},
		{7, 13, 29},
		{100, 100, 100},
	}
	for _, m := range mins {
		for total := 3; total < 400; total += 11 {
			for gap := 0; gap <= 9; gap += 3 {
				available := total - (len(m)-1)*gap
				if available < len(m) {
					continue
				}
				parts := DistributeWithMinimums(total, len(m), gap, m)
				sum := 0
				for _, p := range parts {
					if p < 1 {
						t.Fatalf("DistributeWithMinimums(%d, %d, %d, %v): part %d below 1 px floor",
							total, len(m), gap, m, p)
					}
					sum += p
				}
				if sum != available {
					t.Fatalf("DistributeWithMinimums(%d, %d, %d, %v) sums to %d, want %d",
						total, len(m), gap, m, sum, available)
				}
			}
		}
	}
}

func TestDistributeWithMinimumsFloor(t *testing.T) {
	// Below count pixels of space the 1 px floor wins over exactness.
	parts := DistributeWithMinimums(2, 3, 0, []int{10, 10, 10})
	for i, p := range parts {
		if p != 1 {
			t.Errorf("part[%d] = %d, want 1", i, p)
		}
	}
}
