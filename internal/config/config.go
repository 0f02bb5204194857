// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 600
	TPS          = 60 // тиков симуляции в секунду

	PlayerWidth       = 60
	PlayerHeight      = 30
	PlayerSpeed       = 5.0
	PlayerReloadTicks = 36 // ~600 мс при 60 TPS
	StartingLives     = 3

	ProjectileWidth   = 4
	ProjectileHeight  = 20
	PlayerLaserSpeed  = -8.0 // вверх
	EnemyLaserSpeed   = 6.0  // вниз
	EnemyFireInterval = 800  // в тиках
	FormationRows     = 6
	FormationCols     = 8
	FormationXSpacing = 60.0
	FormationYSpacing = 48.0
	FormationXOffset  = 70.0
	FormationYOffset  = 100.0
	FormationStep     = 1.0
	FormationDescent  = 2.0
	EnemyWidth        = 40
	EnemyHeight       = 32
	ObstacleCount     = 4
	ObstacleBlockSize = 6.0
	ObstacleY         = 480.0
	BonusWidth        = 64
	BonusHeight       = 28
	BonusY            = 80.0
	BonusSpeed        = 3.0
	BonusEntryMargin  = 50.0
	BonusSpawnMin     = 400
	BonusSpawnMax     = 800
	BonusValue        = 500
	ScoreTierA        = 30
	ScoreTierB        = 20
	ScoreTierC        = 10
)

// ObstacleShape шаблон одного барьера, 'x' отмечает блок.
var ObstacleShape = []string{
	"  xxxxxxx",
	" xxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxx     xxx",
	"xx       xx",
}

var (
	BackgroundColor  = color.RGBA{30, 30, 30, 255}
	PlayerColor      = color.RGBA{120, 220, 255, 255}
	PlayerLaserColor = color.RGBA{255, 255, 255, 255}
	BlockColor       = color.RGBA{241, 79, 80, 255}
	BonusColor       = color.RGBA{230, 60, 230, 255}
	TextColor        = color.RGBA{240, 240, 240, 255}
	TierColors       = []color.RGBA{
		{255, 215, 0, 255}, // A, жёлтый
		{60, 200, 80, 255}, // B, зелёный
		{220, 60, 60, 255}, // C, красный
	}
)

// Config неизменяемый набор параметров матча. Передаётся по значению
// в конструкторы систем, глобального состояния нет.
type Config struct {
	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`

	Player     PlayerConfig     `toml:"player"`
	Formation  FormationConfig  `toml:"formation"`
	Obstacles  ObstacleConfig   `toml:"obstacles"`
	Projectile ProjectileConfig `toml:"projectile"`
	Bonus      BonusConfig      `toml:"bonus"`
	Score      ScoreConfig      `toml:"score"`
}

type PlayerConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Speed       float64 `toml:"speed"`
	ReloadTicks int     `toml:"reload_ticks"`
	Lives       int     `toml:"lives"`
}

type FormationConfig struct {
	Rows     int     `toml:"rows"`
	Cols     int     `toml:"cols"`
	XSpacing float64 `toml:"x_spacing"`
	YSpacing float64 `toml:"y_spacing"`
	XOffset  float64 `toml:"x_offset"`
	YOffset  float64 `toml:"y_offset"`
	Step     float64 `toml:"step"`
	Descent  float64 `toml:"descent"`
	Width    float64 `toml:"unit_width"`
	Height   float64 `toml:"unit_height"`
	// RowBands задаёт последнюю строку каждого яруса: [0, 2] значит
	// строка 0 это ярус A, строки 1-2 ярус B, остальные ярус C.
	RowBands [2]int `toml:"row_bands"`
}

type ObstacleConfig struct {
	Count     int      `toml:"count"`
	BlockSize float64  `toml:"block_size"`
	Y         float64  `toml:"y"`
	Shape     []string `toml:"shape"`
}

type ProjectileConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	PlayerSpeed   float64 `toml:"player_speed"`
	EnemySpeed    float64 `toml:"enemy_speed"`
	EnemyInterval int     `toml:"enemy_interval"`
}

type BonusConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Y           float64 `toml:"y"`
	Speed       float64 `toml:"speed"`
	EntryMargin float64 `toml:"entry_margin"`
	SpawnMin    int     `toml:"spawn_min"`
	SpawnMax    int     `toml:"spawn_max"`
}

type ScoreConfig struct {
	TierA int `toml:"tier_a"`
	TierB int `toml:"tier_b"`
	TierC int `toml:"tier_c"`
	Bonus int `toml:"bonus"`
}

// Default возвращает конфигурацию классической партии 600x600.
func Default() Config {
	shape := make([]string, len(ObstacleShape))
	copy(shape, ObstacleShape)
	return Config{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		Player: PlayerConfig{
			Width:       PlayerWidth,
			Height:      PlayerHeight,
			Speed:       PlayerSpeed,
			ReloadTicks: PlayerReloadTicks,
			Lives:       StartingLives,
		},
		Formation: FormationConfig{
			Rows:     FormationRows,
			Cols:     FormationCols,
			XSpacing: FormationXSpacing,
			YSpacing: FormationYSpacing,
			XOffset:  FormationXOffset,
			YOffset:  FormationYOffset,
			Step:     FormationStep,
			Descent:  FormationDescent,
			Width:    EnemyWidth,
			Height:   EnemyHeight,
			RowBands: [2]int{0, 2},
		},
		Obstacles: ObstacleConfig{
			Count:     ObstacleCount,
			BlockSize: ObstacleBlockSize,
			Y:         ObstacleY,
			Shape:     shape,
		},
		Projectile: ProjectileConfig{
			Width:         ProjectileWidth,
			Height:        ProjectileHeight,
			PlayerSpeed:   PlayerLaserSpeed,
			EnemySpeed:    EnemyLaserSpeed,
			EnemyInterval: EnemyFireInterval,
		},
		Bonus: BonusConfig{
			Width:       BonusWidth,
			Height:      BonusHeight,
			Y:           BonusY,
			Speed:       BonusSpeed,
			EntryMargin: BonusEntryMargin,
			SpawnMin:    BonusSpawnMin,
			SpawnMax:    BonusSpawnMax,
		},
		Score: ScoreConfig{
			TierA: ScoreTierA,
			TierB: ScoreTierB,
			TierC: ScoreTierC,
			Bonus: BonusValue,
		},
	}
}
