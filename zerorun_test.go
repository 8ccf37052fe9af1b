package tscrunch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindOptimalZeroRun_NoRuns(t *testing.T) {
	assert.Equal(t, longestRLE, findOptimalZeroRun([]byte{1, 2, 3, 4}))
}

func TestFindOptimalZeroRun_SingleRunWins(t *testing.T) {
	// One run of length 8, nothing else: score(8) = 8*1^1.1 = 8, the only
	// candidate, so it wins outright.
	src := append([]byte{1, 2, 3}, bytes.Repeat([]byte{0}, 8)...)
	src = append(src, 9)
	assert.Equal(t, 8, findOptimalZeroRun(src))
}

func TestFindOptimalZeroRun_FrequencyBeatsLength(t *testing.T) {
	// Many short runs of length 4 (count=10, score=4*10^1.1≈50.4) should
	// outscore a single longer run of length 20 (score=20*1^1.1=20).
	var src []byte
	for i := 0; i < 10; i++ {
		src = append(src, 1)
		src = append(src, bytes.Repeat([]byte{0}, 4)...)
	}
	src = append(src, 1)
	src = append(src, bytes.Repeat([]byte{0}, 20)...)
	src = append(src, 1)
	assert.Equal(t, 4, findOptimalZeroRun(src))
}

func TestFindOptimalZeroRun_ClampsAt256(t *testing.T) {
	src := append([]byte{1}, bytes.Repeat([]byte{0}, 400)...)
	src = append(src, 1)
	assert.Equal(t, 256, findOptimalZeroRun(src))
}

func TestFindOptimalZeroRun_RunEndingAtBufferEnd(t *testing.T) {
	src := []byte{1, 0, 0, 0}
	assert.Equal(t, 3, findOptimalZeroRun(src))
}
