// internal/event/types.go
package event

const (
	SessionStarted     EventType = "SessionStarted"     // Новая сессия (или перезапуск)
	SessionEnded       EventType = "SessionEnded"       // Победа или поражение, ровно один раз
	QuestionPresented  EventType = "QuestionPresented"  // Новый вопрос на экране
	AnswerJudged       EventType = "AnswerJudged"       // Ответ проверен: очки и комбо
	WaveScheduled      EventType = "WaveScheduled"      // Следующая волна запланирована
	WaveSpawned        EventType = "WaveSpawned"        // Волна вышла на поле
	PoolGrown          EventType = "PoolGrown"          // Пул врагов расширен
	EnemySpawned       EventType = "EnemySpawned"       // Враг появился
	EnemyMoved         EventType = "EnemyMoved"         // Враг сдвинулся или сменил позу
	EnemyAttacked      EventType = "EnemyAttacked"      // Враг начал замах
	EnemyDamaged       EventType = "EnemyDamaged"       // Враг получил урон
	EnemyKilled        EventType = "EnemyKilled"        // Враг уничтожен
	EnemyRecycled      EventType = "EnemyRecycled"      // Слот вернулся в пул
	ProjectileLaunched EventType = "ProjectileLaunched" // Снаряд игрока запланирован
	PlayerDamaged      EventType = "PlayerDamaged"      // Персонаж игрока получил урон
)

// AllTypes lists every event type the combat core emits.
var AllTypes = []EventType{
	SessionStarted, SessionEnded, QuestionPresented, AnswerJudged,
	WaveScheduled, WaveSpawned, PoolGrown,
	EnemySpawned, EnemyMoved, EnemyAttacked, EnemyDamaged, EnemyKilled, EnemyRecycled,
	ProjectileLaunched, PlayerDamaged,
}
