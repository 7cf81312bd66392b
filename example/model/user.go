package model

import "time"

type User struct {
	ID        int64
	Name      string
	Email     string
	CityID    int64
	CountryID *int64
	CreatedAt time.Time
}
