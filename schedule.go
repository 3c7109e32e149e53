package colorcode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MinBlockSize is the smallest block size a level may use. Finer levels
// are skipped and end the schedule.
const MinBlockSize = 7

// primes divide the image width by their squares so that level grids
// rarely line up and interfere.
var primes = [...]int{1, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Schedule derives the block size of every level from the image width.
type Schedule uint8

const (
	// SchedulePrimes uses width / p² for the first primes, starting at 1.
	SchedulePrimes Schedule = iota
	// SchedulePowers uses width / 2^i.
	SchedulePowers
	// ScheduleSingle runs one level with width / count.
	ScheduleSingle
)

// String returns the schedule name accepted by ParseSchedule.
func (s Schedule) String() string {
	switch s {
	case SchedulePrimes:
		return "primes"
	case SchedulePowers:
		return "powers"
	case ScheduleSingle:
		return "single"
	default:
		return fmt.Sprintf("Schedule(%d)", uint8(s))
	}
}

// ParseSchedule parses a schedule name. The empty string selects
// SchedulePrimes.
func ParseSchedule(name string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "primes", "prime":
		return SchedulePrimes, nil
	case "powers", "pow2", "power":
		return SchedulePowers, nil
	case "single", "one":
		return ScheduleSingle, nil
	default:
		return 0, errors.Wrapf(ErrUnknownSchedule, "%q", name)
	}
}

// Level is one pass of the pipeline.
type Level struct {
	// Index is the level number used in stage names.
	Index int
	// Size is the block size in pixels.
	Size int
}

// Levels returns the levels the schedule produces for an image of the
// given width when count levels are requested.
//
// Sizes only shrink along a schedule, so the first level below
// MinBlockSize ends it and later levels are absent. SchedulePrimes also
// ends after its last prime. Levels returns ErrResolutionTooFine when not
// even the first level fits.
func Levels(width, count int, s Schedule) ([]Level, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrInvalidLevelCount, "got %d", count)
	}

	var levels []Level
	switch s {
	case ScheduleSingle:
		if size := width / count; size >= MinBlockSize {
			levels = append(levels, Level{Index: count, Size: size})
		}
	case SchedulePowers:
		for i := 0; i < count && i < 63; i++ {
			size := width >> i
			if size < MinBlockSize {
				break
			}
			levels = append(levels, Level{Index: i, Size: size})
		}
	case SchedulePrimes:
		for i := 0; i < count && i < len(primes); i++ {
			size := width / (primes[i] * primes[i])
			if size < MinBlockSize {
				break
			}
			levels = append(levels, Level{Index: i, Size: size})
		}
	default:
		return nil, errors.Wrapf(ErrUnknownSchedule, "%v", s)
	}

	if len(levels) == 0 {
		return nil, errors.Wrapf(ErrResolutionTooFine, "width %d with %d %v levels", width, count, s)
	}
	return levels, nil
}
