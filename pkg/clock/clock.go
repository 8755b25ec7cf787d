package clock

import "time"

// Clock provides the current time in UTC. Dedup windows, token age checks and
// premium expiries are all computed in UTC.
type Clock struct{}

func New() *Clock {
	return &Clock{}
}

func (c *Clock) Now() time.Time {
	return time.Now().UTC()
}

type Mock struct {
	value func() time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{
		value: func() time.Time {
			return value
		},
	}
}

func NewMockF(value func() time.Time) *Mock {
	return &Mock{
		value: value,
	}
}

func (m *Mock) Now() time.Time {
	return m.value()
}

func (m *Mock) Set(t time.Time) {
	m.value = func() time.Time {
		return t
	}
}

func (m *Mock) Advance(d time.Duration) {
	m.Set(m.value().Add(d))
}
