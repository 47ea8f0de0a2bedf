// internal/component/visual.go
package component

// DamageFlash указывает, что врага нужно отрисовать вспышкой урона.
// Время — логические миллисекунды сессии.
type DamageFlash struct {
	StartMs int64
	UntilMs int64
}

// Active reports whether the flash covers nowMs.
func (f DamageFlash) Active(nowMs int64) bool {
	return nowMs >= f.StartMs && nowMs < f.UntilMs
}
