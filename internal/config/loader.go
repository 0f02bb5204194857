package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks everything the simulation relies on at construction time.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %vx%v", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if err := c.Formation.validate(); err != nil {
		return err
	}
	if err := c.Obstacles.validate(); err != nil {
		return err
	}

	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: starting lives must be positive, got %d", ErrInvalidConfig, c.Player.Lives)
	case c.Player.ReloadTicks < 0:
		return fmt.Errorf("%w: player reload cannot be negative", ErrInvalidConfig)
	case c.Projectile.Width <= 0 || c.Projectile.Height <= 0:
		return fmt.Errorf("%w: projectile size must be positive", ErrInvalidConfig)
	case c.Projectile.PlayerSpeed >= 0:
		return fmt.Errorf("%w: player projectiles must travel upward (negative speed)", ErrInvalidConfig)
	case c.Projectile.EnemySpeed <= 0:
		return fmt.Errorf("%w: enemy projectiles must travel downward (positive speed)", ErrInvalidConfig)
	case c.Projectile.EnemyInterval <= 0:
		return fmt.Errorf("%w: enemy fire interval must be positive", ErrInvalidConfig)
	case c.Bonus.Width <= 0 || c.Bonus.Height <= 0 || c.Bonus.Speed <= 0:
		return fmt.Errorf("%w: bonus size and speed must be positive", ErrInvalidConfig)
	case c.Bonus.SpawnMin <= 0 || c.Bonus.SpawnMax < c.Bonus.SpawnMin:
		return fmt.Errorf("%w: bonus spawn range [%d, %d]", ErrInvalidConfig, c.Bonus.SpawnMin, c.Bonus.SpawnMax)
	case c.Score.TierA < 0 || c.Score.TierB < 0 || c.Score.TierC < 0 || c.Score.Bonus < 0:
		return fmt.Errorf("%w: score values cannot be negative", ErrInvalidConfig)
	}
	return nil
}

func (f FormationConfig) validate() error {
	if f.Rows <= 0 || f.Cols <= 0 {
		return fmt.Errorf("%w: formation grid %dx%d", ErrInvalidConfig, f.Rows, f.Cols)
	}
	if f.XSpacing <= 0 || f.YSpacing <= 0 {
		return fmt.Errorf("%w: formation spacing %vx%v", ErrInvalidConfig, f.XSpacing, f.YSpacing)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: unit size %vx%v", ErrInvalidConfig, f.Width, f.Height)
	}
	if f.Step <= 0 || f.Descent <= 0 {
		return fmt.Errorf("%w: formation step and descent must be positive", ErrInvalidConfig)
	}
	if f.RowBands[0] < 0 || f.RowBands[1] < f.RowBands[0] {
		return fmt.Errorf("%w: row bands %v", ErrInvalidConfig, f.RowBands)
	}
	return nil
}

func (o ObstacleConfig) validate() error {
	if o.Count <= 0 {
		return fmt.Errorf("%w: obstacle count %d", ErrInvalidConfig, o.Count)
	}
	if o.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %v", ErrInvalidConfig, o.BlockSize)
	}
	for _, row := range o.Shape {
		if strings.ContainsRune(row, 'x') {
			return nil
		}
	}
	return fmt.Errorf("%w: obstacle shape has no blocks", ErrInvalidConfig)
}
