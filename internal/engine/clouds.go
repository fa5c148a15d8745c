package engine

import (
	"math/rand"

	"github.com/vovakirdan/dinorun/internal/config"
)

// Cloud is a background decoration. Clouds never collide.
type Cloud struct {
	X, Y  int
	Speed int
}

type cloudField struct {
	clouds  []Cloud
	cfg     config.CloudsConfig
	screenW int
}

func newCloudField(cfg config.Config) cloudField {
	return cloudField{
		clouds:  make([]Cloud, cfg.Clouds.Count),
		cfg:     cfg.Clouds,
		screenW: cfg.Screen.Width,
	}
}

// scatter places every cloud at a random position.
func (f *cloudField) scatter(rng *rand.Rand) {
	for i := range f.clouds {
		f.clouds[i].X = rng.Intn(f.screenW)
		f.respawn(rng, &f.clouds[i])
	}
}

func (f *cloudField) respawn(rng *rand.Rand, c *Cloud) {
	c.Y = f.cfg.MinY + rng.Intn(f.cfg.YRange)
	c.Speed = f.cfg.MinSpeed + rng.Intn(f.cfg.SpeedRange)
}

// step drifts clouds left and wraps those past the left edge back to the
// right with a fresh height and speed.
func (f *cloudField) step(rng *rand.Rand) {
	for i := range f.clouds {
		c := &f.clouds[i]
		c.X -= c.Speed
		if c.X+f.cfg.Width < 0 {
			c.X = f.screenW
			f.respawn(rng, c)
		}
	}
}
