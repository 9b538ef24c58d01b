package effect

import "time"

const (
	defaultRainTick         = 120 * time.Millisecond
	defaultCarouselInterval = 5 * time.Second
)

// Tuning bundles every cosmetic constant of the page's animations.
type Tuning struct {
	Rain             RainConfig
	RainTick         time.Duration
	Typist           TypistConfig
	CarouselInterval time.Duration
}

// DefaultTuning returns the stock animation constants.
func DefaultTuning() Tuning {
	return Tuning{
		Rain:             DefaultRainConfig(),
		RainTick:         defaultRainTick,
		Typist:           DefaultTypistConfig(),
		CarouselInterval: defaultCarouselInterval,
	}
}
