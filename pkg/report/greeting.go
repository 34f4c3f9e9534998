package report

import "time"

// Greeting returns the salutation shown at the top of the dashboard for
// the given moment.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return "Доброе утро!"
	case h >= 12 && h < 18:
		return "Добрый день!"
	case h >= 18:
		return "Добрый вечер!"
	default:
		return "Доброй ночи!"
	}
}
