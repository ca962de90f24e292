package repository

type Meeting struct {
	Day   string
	Place string
}
