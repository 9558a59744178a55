package env

import "time"

const defaultDebounce = 600 * time.Millisecond

type SearchEnvironment struct {
	DebounceMS int `validate:"omitempty,gte=500,lte=800"`
}

func (e SearchEnvironment) GetDebounce() time.Duration {
	if e.DebounceMS == 0 {
		return defaultDebounce
	}

	return time.Duration(e.DebounceMS) * time.Millisecond
}
