package tscrunch

import "math"

// findOptimalZeroRun scans src once, scores each distinct zero-run length
// by score(r) = r * count(r)^1.1, and returns the highest-scoring length,
// breaking ties by earliest discovery order. Run lengths are clamped to
// [2,256]; if no run of length >= 2 is found, it returns longestRLE (64)
// as the default. See DESIGN.md for why the clamp is 256 rather than 64.
func findOptimalZeroRun(src []byte) int {
	const maxRun = 256
	counts := make(map[int]int)
	firstSeen := make(map[int]int)
	order := 0

	i := 0
	for i < len(src)-1 {
		if src[i] != 0 {
			i++
			continue
		}
		j := i + 1
		for j < len(src) && src[j] == 0 && j-i < maxRun {
			j++
		}
		run := j - i
		if run >= minRLE {
			if _, ok := firstSeen[run]; !ok {
				firstSeen[run] = order
				order++
			}
			counts[run]++
		}
		i = j
	}

	if len(counts) == 0 {
		return longestRLE
	}

	bestRun := 0
	bestScore := -1.0
	bestFirst := -1
	for run, count := range counts {
		score := float64(run) * math.Pow(float64(count), 1.1)
		if score > bestScore || (score == bestScore && firstSeen[run] < bestFirst) {
			bestScore = score
			bestRun = run
			bestFirst = firstSeen[run]
		}
	}
	return bestRun
}
