package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// SeaLoop synthesises seconds of surf as 16-bit little-endian stereo PCM.
// Low-passed noise is shaped by a swell envelope whose period divides the
// loop length, so the loop seams on a trough.
func SeaLoop(sampleRate, seconds int, seed uint64) []byte {
	n := sampleRate * seconds
	out := make([]byte, n*4)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var low float64
	const smoothing = 0.02
	for i := 0; i < n; i++ {
		low += (rng.Float64()*2 - 1 - low) * smoothing
		phase := float64(i) / float64(n) * 2 * math.Pi
		swell := 0.5 - 0.5*math.Cos(phase*2)
		v := low * swell * 4
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * 0.3 * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
