// internal/config/config.go
package config

import "image/color"

// Поле боя и цикл обновления
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	TicksPerSecond = 60
	TickMs         = 1000 / TicksPerSecond
	MaxDeltaMs     = 60 // Больше не продвигаем логические часы за один тик

	PlayerX = 180.0
	PlayerY = 400.0
)

// Спавн и пул врагов
const (
	MonstersPerWave      = 3
	InitialPoolSize      = 50
	PoolGrowBatch        = 10
	WaveRecycleThreshold = 2    // Новая волна, когда активных врагов меньше
	NextWaveDelayMs      = 1500 // Пауза между опустевшим полем и новой волной

	SpawnX       = 1180.0
	SpawnJitterX = 60.0
	SpawnJitterY = 18.0

	DeathExitMs   = 600 // Анимация исчезновения до возврата слота в пул
	DamageFlashMs = 150
)

// SpawnBandsY — три горизонтальные полосы, по которым идут враги.
var SpawnBandsY = [3]float64{320, 400, 480}

// Бой
const (
	EnemyWindupMs         = 400 // Замах врага: урон приходит позже начала атаки
	MoveNotifyMs          = 250 // Не чаще одного EnemyMoved на врага за этот интервал
	ProjectileLeadSeconds = 0.3 // Эвристика упреждения, а не точное решение
	StatScalePerTier      = 0.5
	DefaultSessionLimitMs = 180_000
)

// Очки и комбо
const (
	ScorePerCorrect = 10
	ComboBonusStep  = 2
	ComboBonusCap   = 10
)

// Генерация вопросов
const (
	MaxDifficultyTier        = 3
	MinBankQuestions         = 10
	DistractorCount          = 3
	DistractorMaxOffset      = 5
	DistractorAttempts       = 50
	CompareMin               = 1
	CompareMax               = 50
	DivisionMinFactor        = 2
	DivisionMaxFactor        = 9
	MultiplicationMinFactor  = 2
	MultiplicationMaxFactor  = 9
	MultiplicationTier3Limit = 5
	DefaultMixedChance       = 0.25
)

// AnswerDamage returns the base damage a correct answer deals at a difficulty tier.
func AnswerDamage(tier int) int {
	switch {
	case tier <= 1:
		return 30
	case tier == 2:
		return 45
	default:
		return 60
	}
}

// MaxAdditiveNumber — верхняя граница результата для сложения и вычитания.
func MaxAdditiveNumber(tier int) int {
	if tier == 1 {
		return 10
	}
	return 20
}

// MaxFactor — верхняя граница множителя.
func MaxFactor(tier int) int {
	if tier == 3 {
		return MultiplicationTier3Limit
	}
	return MultiplicationMaxFactor
}

// Отладочный просмотрщик
const (
	EnemyRadius      = 18.0
	PlayerRadius     = 24.0
	ProjectileRadius = 5.0
	AnswerKeyCount   = 4
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	LaneColor        = color.RGBA{45, 55, 70, 255}
	PlayerColor      = color.RGBA{50, 205, 50, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	AttackingColor   = color.RGBA{255, 140, 0, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{20, 20, 30, 230}
	PanelBorderColor = color.RGBA{70, 100, 120, 255}
)
