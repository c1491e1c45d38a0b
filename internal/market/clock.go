package market

import (
	"fmt"

	"github.com/pkg/errors"
)

// Clock is a time of day with minute precision.
type Clock struct {
	minutes int
}

// At builds a Clock. Out of range values are rejected with ErrInvalidArgument.
func At(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, errors.Wrapf(ErrInvalidArgument, "time of day %02d:%02d", hour, minute)
	}
	return Clock{minutes: hour*60 + minute}, nil
}

// MustAt is At for literals known to be valid.
func MustAt(hour, minute int) Clock {
	c, err := At(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return c.minutes / 60 }
func (c Clock) Minute() int { return c.minutes % 60 }

func (c Clock) Before(o Clock) bool { return c.minutes < o.minutes }
func (c Clock) After(o Clock) bool  { return c.minutes > o.minutes }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }
