package testdata

import (
	"time"

	"github.com/mickamy/factorygen/example/model"
	"github.com/mickamy/factorygen/factory"
)

//go:generate go tool factorygen -type=CountryFactory -model=model.Country

type CountryFactory struct {
	Name string `db:"name"`
}

//go:generate go tool factorygen -type=CityFactory -model=model.City

type CityFactory struct {
	Name    string                                                    `db:"name"`
	Country factory.Association[model.Country, int64, CountryFactory] `db:"country_id"`
}

//go:generate go tool factorygen -type=UserFactory -model=model.User

type UserFactory struct {
	Name      string
	Email     string `db:"email"`
	CreatedAt time.Time
	HomeCity  *factory.Association[model.City, int64, CityFactory]
	Admin     bool `db:"-"`
}
