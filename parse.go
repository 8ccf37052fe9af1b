package tscrunch

// shortestParse runs Dijkstra over the parse graph from 0 to n and
// reconstructs the winning token list in source order. The shortest-path
// search itself is implemented by github.com/RyanCarrier/dijkstra (see
// DESIGN.md) rather than a hand-rolled priority queue.
func shortestParse(pg *parseGraph, n int) ([]Token, error) {
	best, err := pg.g.Shortest(0, n)
	if err != nil {
		return nil, ErrNoPath
	}

	path := best.Path
	tokens := make([]Token, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		t, ok := pg.tokens[edge{path[i], path[i+1]}]
		if !ok {
			return nil, ErrNoPath
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
