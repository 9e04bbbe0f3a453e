package reputation

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		rating  float64
		reviews int
		want    Tier
	}{
		{"diamond", 4.9, 124, Diamante},
		{"diamond exact", 4.9, 100, Diamante},
		{"gold over silver", 4.85, 60, Ouro},
		{"gold exact", 4.8, 50, Ouro},
		{"many reviews low rating", 4.7, 300, Prata},
		{"silver", 4.5, 45, Prata},
		{"bronze", 4.0, 10, Bronze},
		{"perfect but few reviews", 5.0, 9, Novato},
		{"no reviews", 0, 0, Novato},
		{"low rating", 3.9, 500, Novato},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.rating, tc.reviews); got != tc.want {
				t.Errorf("Classify(%v, %d) = %s, want %s", tc.rating, tc.reviews, got.Level, tc.want.Level)
			}
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	// Holding rating at each tier threshold, more reviews never lowers the tier.
	for _, rating := range []float64{4.0, 4.5, 4.8, 4.9, 5.0} {
		prev := -1
		for reviews := 0; reviews <= 200; reviews++ {
			rank := Classify(rating, reviews).Rank
			if rank < prev {
				t.Fatalf("rating %v: rank dropped from %d to %d at %d reviews", rating, prev, rank, reviews)
			}
			prev = rank
		}
	}
	// Holding reviews at each tier threshold, higher rating never lowers the tier.
	for _, reviews := range []int{10, 30, 50, 100, 150} {
		prev := -1
		for i := 0; i <= 500; i++ {
			rating := float64(i) / 100
			rank := Classify(rating, reviews).Rank
			if rank < prev {
				t.Fatalf("reviews %d: rank dropped from %d to %d at rating %v", reviews, prev, rank, rating)
			}
			prev = rank
		}
	}
}
