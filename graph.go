package tscrunch

import (
	"sync"

	"github.com/RyanCarrier/dijkstra"
)

// edge identifies a single arc of the parse graph by its endpoints. The
// graph keeps at most one token per (from, to) pair: literals skip sizes
// already taken in edgesAt, and where edgesAt yields two non-literal
// tokens of one size (an RLE and an LZ2 of size 2, or an RLE and the zero
// run), the later one, which is also the cheaper, replaces the earlier.
type edge struct {
	from, to int
}

// parseGraph is a DAG over vertices 0..N, with edges carrying the token
// that would be emitted for that step. g drives the actual shortest-path
// search; tokens lets the winning path be turned back into a token list,
// since the graph library only returns vertex sequences.
type parseGraph struct {
	g      *dijkstra.Graph
	tokens map[edge]Token
}

// buildGraph enumerates every candidate token at every position and wires
// them into the parse graph. Match finding at each position is independent
// of every other position, so positions are processed concurrently with a
// shared mutex protecting the token map; the per-position token choice
// itself never depends on what other goroutines found, so this does not
// affect determinism.
func buildGraph(src []byte, optimalRun int) *parseGraph {
	n := len(src)
	pg := &parseGraph{
		g:      dijkstra.NewGraph(),
		tokens: make(map[edge]Token, n*4),
	}
	for i := 0; i <= n; i++ {
		pg.g.AddVertex(i)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			edges := edgesAt(src, i, optimalRun)
			mu.Lock()
			for _, e := range edges {
				pg.tokens[edge{i, i + e.Size}] = e
			}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	for e, t := range pg.tokens {
		pg.g.AddArc(e.from, e.to, cost(t))
	}
	return pg
}

// edgesAt computes every candidate token starting at position i: the LZ
// family (best match down through its own size floor), the RLE family,
// one LZ2 candidate, one zero-run candidate, and literals filling every
// remaining uncovered size.
func edgesAt(src []byte, i, optimalRun int) []Token {
	n := len(src)
	used := make(map[int]bool)
	var out []Token

	rleLen := rleLength(src, i)
	rleCap := rleLen
	if rleCap > longestRLE {
		rleCap = longestRLE
	}

	var lz lzMatch
	if rleCap < longestLongLZ-1 {
		minlz := rleCap + 1
		if minlz < minLZ {
			minlz = minLZ
		}
		lz = bestLZ(src, i, minlz)
	}

	// LZ family: every size from the best match down to its own minlz,
	// all referencing the same offset.
	if lz.size > 0 {
		floor := rleCap + 1
		if floor < minLZ {
			floor = minLZ
		}
		for size := lz.size; size >= floor; size-- {
			t := Token{Kind: KindLZ, Pos: i, Size: size, Offset: lz.offset}
			out = append(out, t)
			used[size] = true
		}
	}

	// RLE family: an overflowing run only contributes its capped form;
	// otherwise every prefix length down to minRLE is a candidate.
	if rleLen > longestRLE {
		t := Token{Kind: KindRLE, Pos: i, Size: longestRLE, Byte: src[i]}
		out = append(out, t)
		used[longestRLE] = true
	} else {
		for size := rleLen; size >= minRLE; size-- {
			t := Token{Kind: KindRLE, Pos: i, Size: size, Byte: src[i]}
			out = append(out, t)
			used[size] = true
		}
	}

	// LZ2: a single 2-byte back-reference.
	if i+2 <= n {
		if off := lz2Offset(src, i); off > 0 {
			t := Token{Kind: KindLZ2, Pos: i, Size: 2, Offset: off}
			out = append(out, t)
			used[2] = true
		}
	}

	// ZeroRun: one fixed-length edge using the globally chosen run.
	if zeroRunAt(src, i, optimalRun) {
		t := Token{Kind: KindZeroRun, Pos: i, Size: optimalRun}
		out = append(out, t)
		used[optimalRun] = true
	}

	// Literals: cover every size not already spoken for by a non-literal
	// token of the same size.
	litMax := longestLiteral
	if n-i < litMax {
		litMax = n - i
	}
	for size := 1; size <= litMax; size++ {
		if used[size] {
			continue
		}
		out = append(out, literalToken(i, size))
	}

	return out
}
