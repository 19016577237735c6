package insights

import "errors"

var (
	// ErrInvalidMood возвращается при неизвестной метке настроения
	ErrInvalidMood = errors.New("insights: invalid mood label")
)
