package geometry

// =============================================================================
// Exact Integer Distribution
// =============================================================================

// DistributeEvenly splits total into count integer parts that sum to exactly
// total. Remainder pixels go to the first parts, so the result is
// deterministic and each part is within 1 of total/count.
//
// Example: DistributeEvenly(1000, 3) = [334, 333, 333].
//
// Returns nil if count <= 0.
func DistributeEvenly(total, count int) []int {
	if count <= 0 {
		return nil
	}
	base := total / count
	rem := total % count
	parts := make([]int, count)
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}
	return parts
}

// DistributeWithMinimums splits total into count parts separated by a fixed
// gap, so that the parts sum to exactly total - (count-1)*gap.
//
// mins is an optional per-part minimum size; it must be nil or have length
// count. When the minimums are satisfiable (their sum fits the available
// space) every part receives its minimum plus an even share of the surplus.
// When they are not, each part's share is weighted proportionally to its
// minimum with a floor of 1 px, and the integer-truncation remainder is
// settled so the parts still sum to the available space exactly.
//
// The only case where the exact-sum guarantee is waived is when the available
// space is smaller than count pixels: the 1 px floor then wins and the sum
// exceeds the available space.
func DistributeWithMinimums(total, count, gap int, mins []int) []int {
	if count <= 0 {
		return nil
	}
	available := total - (count-1)*gap

	if len(mins) != count {
		return DistributeEvenly(available, count)
	}

	sumMin := 0
	for _, m := range mins {
		if m > 0 {
			sumMin += m
		}
	}
	if sumMin == 0 {
		return DistributeEvenly(available, count)
	}

	if sumMin <= available {
		// Satisfiable: minimums first, surplus spread evenly.
		surplus := DistributeEvenly(available-sumMin, count)
		parts := make([]int, count)
		for i := range parts {
			m := mins[i]
			if m < 0 {
				m = 0
			}
			parts[i] = m + surplus[i]
		}
		return parts
	}

	// Unsatisfiable: scale each part by its share of the total minimum,
	// never below 1 px.
	parts := make([]int, count)
	sum := 0
	for i := range parts {
		m := mins[i]
		if m < 0 {
			m = 0
		}
		p := available * m / sumMin
		if p < 1 {
			p = 1
		}
		parts[i] = p
		sum += p
	}

	// Truncation leaves a few pixels unassigned (or, with the 1 px floor,
	// over-assigned). Settle them one pixel at a time so the sum is exact.
	for i := 0; sum < available; i = (i + 1) % count {
		parts[i]++
		sum++
	}
	for sum > available {
		reduced := false
		for i := count - 1; i >= 0 && sum > available; i-- {
			if parts[i] > 1 {
				parts[i]--
				sum--
				reduced = true
			}
		}
		if !reduced {
			// Every part is at the 1 px floor; exactness is unattainable
			// below count pixels of space.
			break
		}
	}
	return parts
}
