package entity

import "time"

// Holiday festivo nacional: una fecha civil y su nombre.
type Holiday struct {
	Date time.Time
	Name string
}
