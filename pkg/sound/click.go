package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
)

const (
	// ClickDuration is the length of the click sample in seconds.
	ClickDuration = 0.1
	clickGain     = 0.8
	noiseSeed     = 1
)

// Click synthesizes a short wooden click as 16-bit little-endian stereo PCM.
// The sample is the same on every call.
func Click(sampleRate int) []byte {
	n := int(float64(sampleRate) * ClickDuration)
	noise := rand.New(rand.NewSource(noiseSeed))
	buf := make([]byte, n*4)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.0
		if t < 0.005 {
			v += math.Sin(2*math.Pi*1500*t) * math.Exp(-t*1000) * 0.5
		}
		if t < 0.05 {
			v += math.Sin(2*math.Pi*250*t) * math.Exp(-t*80) * 0.8
		}
		if t < 0.01 {
			v += (noise.Float64()*2 - 1) * math.Exp(-t*500) * 0.4
		}

		s := toInt16(v * clickGain)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

func toInt16(v float64) int16 {
	v *= 32767
	switch {
	case v > 32767:
		return 32767
	case v < -32767:
		return -32767
	}
	return int16(v)
}
