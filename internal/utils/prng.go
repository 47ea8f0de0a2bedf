// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"math-battle/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей сессии.
// Не безопасен для конкурентного использования: каждая сессия владеет своим.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
// При n <= 0 возвращает 0 вместо паники.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntRange возвращает случайное целое число в диапазоне [lo, hi] включительно.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter возвращает смещение в диапазоне [-amount, amount).
func (s *PRNGService) Jitter(amount float64) float64 {
	return (s.rng.Float64()*2 - 1) * amount
}

// Sign возвращает 1 или -1 с равной вероятностью.
func (s *PRNGService) Sign() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ShuffleInts перемешивает срез на месте.
func (s *PRNGService) ShuffleInts(values []int) {
	s.rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы появления.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].MonsterID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.MonsterID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].MonsterID
}
