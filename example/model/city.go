package model

type City struct {
	ID        int64
	Name      string
	CountryID int64
}
