package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

func stream(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}, n int) [][2]float64 {
	t.Helper()
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	return buf[:got]
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		for _, v := range s {
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
	}
	return m
}

func TestLaserAndExplosionCuesAddVoices(t *testing.T) {
	p := NewCuePlayer(SampleRate)

	p.OnEvent(event.Event{Type: event.LaserFired})
	p.OnEvent(event.Event{Type: event.Explosion})

	assert.Equal(t, 1, p.Played(event.LaserFired))
	assert.Equal(t, 1, p.Played(event.Explosion))
	assert.Greater(t, peak(stream(t, p.Output(), 512)), 0.0)
}

func TestNonCueEventsAreIgnored(t *testing.T) {
	p := NewCuePlayer(SampleRate)

	p.OnEvent(event.Event{Type: event.EnemyDestroyed})

	assert.Zero(t, p.Played(event.EnemyDestroyed))
	assert.Zero(t, p.mixer.Len())
}

func TestAmbienceStopsOnCue(t *testing.T) {
	p := NewCuePlayer(SampleRate)
	require.NoError(t, p.StartAmbience())
	require.NoError(t, p.StartAmbience(), "second start is a no-op")
	assert.Equal(t, 1, p.mixer.Len())
	assert.True(t, p.AmbiencePlaying())
	assert.Greater(t, peak(stream(t, p.Output(), 1024)), 0.0)

	p.OnEvent(event.Event{Type: event.AmbienceStop})

	assert.False(t, p.AmbiencePlaying())
	assert.Zero(t, peak(stream(t, p.Output(), 1024)))
}

func TestAmbienceRestartDropsStoppedDrone(t *testing.T) {
	p := NewCuePlayer(SampleRate)
	for match := 0; match < 3; match++ {
		require.NoError(t, p.StartAmbience())
		p.OnEvent(event.Event{Type: event.AmbienceStop})
	}
	require.NoError(t, p.StartAmbience())

	stream(t, p.Output(), 512)

	assert.Equal(t, 1, p.mixer.Len(), "only the current drone stays in the mixer")
	assert.True(t, p.AmbiencePlaying())
}

func TestAmbienceStopWithoutAmbience(t *testing.T) {
	p := NewCuePlayer(SampleRate)

	p.OnEvent(event.Event{Type: event.AmbienceStop})

	assert.False(t, p.AmbiencePlaying())
	assert.Equal(t, 1, p.Played(event.AmbienceStop))
}

func TestAttachToGame(t *testing.T) {
	g, err := app.NewGame(config.Default(), utils.NewPRNGService(1))
	require.NoError(t, err)
	p := NewCuePlayer(SampleRate)
	p.Attach(g)

	g.Tick(app.Input{Fire: true})

	assert.Equal(t, 1, p.Played(event.LaserFired))
}

func TestSynthVoicesStayInRange(t *testing.T) {
	for name, s := range map[string]interface {
		Stream([][2]float64) (int, bool)
	}{
		"laser":     laserSound(SampleRate),
		"explosion": explosionSound(utils.NewPRNGService(3), SampleRate),
	} {
		t.Run(name, func(t *testing.T) {
			samples := stream(t, s, 2048)
			require.NotEmpty(t, samples)
			assert.LessOrEqual(t, peak(samples), 1.0)
		})
	}
}

func TestSweepEnds(t *testing.T) {
	s := newSweep(1000, 500, laserDuration, SampleRate)
	total := SampleRate.N(laserDuration)

	buf := make([][2]float64, total+100)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, total, n)

	n, ok = s.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestCloseSilencesMixer(t *testing.T) {
	p := NewCuePlayer(SampleRate)
	require.NoError(t, p.StartAmbience())
	p.OnEvent(event.Event{Type: event.LaserFired})

	p.Close()

	assert.False(t, p.AmbiencePlaying())
	assert.Zero(t, p.mixer.Len())
}
