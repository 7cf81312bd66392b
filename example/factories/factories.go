// Package factories defines the test-data factories for the example
// models. The builder methods, Insert, and IDForModel live in the
// *_gen.go files produced by factorygen; this file holds the struct
// definitions and the constructors that pick sensible defaults.
package factories

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mickamy/factorygen/example/model"
	"github.com/mickamy/factorygen/factory"
)

//go:generate go tool factorygen -type CountryFactory -model model.Country
type CountryFactory struct {
	Name string
}

// NewCountryFactory returns a factory with a random country name.
func NewCountryFactory() CountryFactory {
	return CountryFactory{Name: gofakeit.Country()}
}

//go:generate go tool factorygen -type CityFactory -model model.City
type CityFactory struct {
	Name    string
	Country factory.Association[model.Country, int64, CountryFactory] `db:"country_id"`
}

// NewCityFactory returns a factory with a random city name and a fresh
// country; inserting it inserts the country first.
func NewCityFactory() CityFactory {
	return CityFactory{
		Name:    gofakeit.City(),
		Country: factory.Pending[model.Country, int64](NewCountryFactory()),
	}
}

//go:generate go tool factorygen -type UserFactory -model model.User
type UserFactory struct {
	Name      string
	Email     string
	City      factory.Association[model.City, int64, CityFactory]        `db:"city_id"`
	Country   *factory.Association[model.Country, int64, CountryFactory] `db:"country_id"`
	CreatedAt time.Time
}

// NewUserFactory returns a factory with a random name, a unique email,
// a fresh city, and no country. Emails come from the process-wide
// sequence so two users never collide within a test run.
func NewUserFactory() UserFactory {
	return UserFactory{
		Name: gofakeit.Name(),
		Email: factory.Sequence(func(n int64) string {
			return fmt.Sprintf("user-%d@example.com", n)
		}),
		City:      factory.Pending[model.City, int64](NewCityFactory()),
		CreatedAt: time.Now().UTC(),
	}
}
