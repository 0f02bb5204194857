// internal/event/types.go
package event

// Звуковые сигналы. Аудио-коллаборатор проигрывает их сам, ядро только сообщает.
const (
	LaserFired   EventType = "LaserFired"   // Выстрел (игрока или врага)
	Explosion    EventType = "Explosion"    // Попадание снаряда
	AmbienceStop EventType = "AmbienceStop" // Остановить фоновую музыку
)

// Информационные события матча.
const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: types.EntityID
	BonusSpawned   EventType = "BonusSpawned"   // Data: defs.Side
	BonusDestroyed EventType = "BonusDestroyed" // Data: types.EntityID
	LifeLost       EventType = "LifeLost"       // Data: оставшиеся жизни, int
	MatchLost      EventType = "MatchLost"
)

// Cues перечисляет звуковые сигналы.
var Cues = []EventType{LaserFired, Explosion, AmbienceStop}

// AllTypes перечисляет все события, которые публикует симуляция.
var AllTypes = []EventType{
	LaserFired, Explosion, AmbienceStop,
	EnemyDestroyed, BonusSpawned, BonusDestroyed, LifeLost, MatchLost,
}
