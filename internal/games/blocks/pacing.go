package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// PollInterval returns how long the driver waits between input polls after
// the given number of cleared lines:
//
//	(base - (lines/linesPerStep)*step) / divisor  microseconds
//
// floored at MinMicros. With the defaults this is (700000 - lines/10*1000)/60.
func PollInterval(p config.PacingConfig, lines int) time.Duration {
	micros := (p.BaseMicros - (lines/p.LinesPerStep)*p.StepMicros) / p.Divisor
	if micros < p.MinMicros {
		micros = p.MinMicros
	}
	return time.Duration(micros) * time.Microsecond
}
