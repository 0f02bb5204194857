package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-space-invaders/internal/utils"
)

// sweep синус с линейным спуском частоты от from до to за duration.
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		k := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*k
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise белый шум с экспоненциальным затуханием.
type noise struct {
	rng      *utils.PRNGService
	position int
	total    int
	decay    float64
	rate     beep.SampleRate
}

func newNoise(rng *utils.PRNGService, duration time.Duration, decay float64, rate beep.SampleRate) *noise {
	return &noise{rng: rng, total: rate.N(duration), decay: decay, rate: rate}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.total {
			return i, i > 0
		}
		t := float64(n.position) / float64(n.rate)
		val := math.Exp(-t*n.decay) * (n.rng.Float64()*2 - 1)
		samples[i][0] = val
		samples[i][1] = val
		n.position++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// withVolume переводит линейную громкость в шкалу effects.Volume.
// log2(0) = -Inf, поэтому ноль означает тишину.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// laserSound короткий "пиу": спуск частоты 1200 -> 300 Гц.
func laserSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(newSweep(1200, 300, laserDuration, rate), 0.35)
}

// explosionSound шум с низким гулом.
func explosionSound(rng *utils.PRNGService, rate beep.SampleRate) beep.Streamer {
	rumble := beep.Take(rate.N(explosionDuration), newSweep(90, 40, explosionDuration, rate))
	return beep.Mix(
		withVolume(newNoise(rng, explosionDuration, 9, rate), 0.5),
		withVolume(rumble, 0.3),
	)
}

// ambienceDrone бесконечный низкий аккорд из двух синусов.
func ambienceDrone(rate beep.SampleRate) (beep.Streamer, error) {
	root, err := generators.SineTone(rate, 55)
	if err != nil {
		return nil, err
	}
	fifth, err := generators.SineTone(rate, 82.5)
	if err != nil {
		return nil, err
	}
	return beep.Mix(withVolume(root, 0.12), withVolume(fifth, 0.06)), nil
}
