// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 700
	ScreenHeight = 540
	MapOffsetY   = 40 // место под строку статуса
	PanelX       = 510
	PanelWidth   = 180

	BlockSize    = 50.0 // размер клетки карты в пикселях
	TickInterval = 20 * time.Millisecond
	TicksPerSec  = 50

	StartingCash       = 150
	BaseHealth         = 100
	DamagePerEnemy     = 5  // урон базе за каждого дошедшего врага
	KillReward         = 10 // деньги за убийство
	InitialSpawnPeriod = 5 * time.Millisecond

	ProjectileSpeed  = 600.0 // pixels per second
	ProjectileRadius = 2.0   // pixels

	SingleTargetDamage = 15
	AreaDamage         = 20
	SplashRadius       = 75.0
	SlowDuration       = 3000 * time.Millisecond
	SlowFactor         = 0.5

	HealthBarHeight = 7

	BannerSlideSeconds = 0.6
	ClickCooldown      = 150 * time.Millisecond
)

var (
	BackgroundColor  = color.RGBA{199, 112, 27, 255}
	WallColor        = color.RGBA{114, 64, 15, 255}
	SlotColor        = color.RGBA{255, 200, 0, 255}
	SlotActiveColor  = color.RGBA{0, 255, 0, 255}
	WaypointColor    = color.RGBA{255, 0, 255, 255}
	HealthBarBack    = color.RGBA{255, 0, 0, 255}
	HealthBarFront   = color.RGBA{0, 255, 0, 255}
	ProjectileStroke = color.RGBA{255, 169, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{60, 60, 70, 230}
	ButtonColor      = color.RGBA{200, 200, 200, 255}
	ButtonDisabled   = color.RGBA{110, 110, 110, 255}
	BannerColor      = color.RGBA{192, 192, 192, 255}
)
