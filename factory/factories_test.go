package factory_test

import (
	"context"

	"github.com/mickamy/factorygen/factory"
)

// Hand-written models and factories shared by the tests in this package.
// They look exactly like what factorygen emits, minus the generated
// setters, so the runtime is exercised the same way generated code does.

type Country struct {
	ID   int64
	Name string
}

type City struct {
	ID        int64
	Name      string
	CountryID int64
}

type User struct {
	ID        int64
	Name      string
	CityID    int64
	CountryID *int64
}

type CountryFactory struct {
	Name string
}

func NewCountryFactory() CountryFactory {
	return CountryFactory{Name: "Denmark"}
}

func (f CountryFactory) Insert(ctx context.Context, db factory.Querier) (Country, error) {
	id, err := factory.InsertRow(ctx, db, "countries", "id",
		[]string{"name"}, []any{f.Name})
	if err != nil {
		return Country{}, err
	}
	return Country{ID: id, Name: f.Name}, nil
}

func (CountryFactory) IDForModel(m *Country) int64 { return m.ID }

type CityFactory struct {
	Name    string
	Country factory.Association[Country, int64, CountryFactory]
}

func NewCityFactory() CityFactory {
	return CityFactory{
		Name:    "Copenhagen",
		Country: factory.Pending[Country, int64](NewCountryFactory()),
	}
}

func (f CityFactory) Insert(ctx context.Context, db factory.Querier) (City, error) {
	countryID, err := f.Country.Resolve(ctx, db)
	if err != nil {
		return City{}, err
	}
	id, err := factory.InsertRow(ctx, db, "cities", "id",
		[]string{"name", "country_id"}, []any{f.Name, countryID})
	if err != nil {
		return City{}, err
	}
	return City{ID: id, Name: f.Name, CountryID: countryID}, nil
}

func (CityFactory) IDForModel(m *City) int64 { return m.ID }

type UserFactory struct {
	Name    string
	City    factory.Association[City, int64, CityFactory]
	Country *factory.Association[Country, int64, CountryFactory]
}

func NewUserFactory() UserFactory {
	return UserFactory{
		Name: "Bob",
		City: factory.Pending[City, int64](NewCityFactory()),
	}
}

func (f UserFactory) Insert(ctx context.Context, db factory.Querier) (User, error) {
	cityID, err := f.City.Resolve(ctx, db)
	if err != nil {
		return User{}, err
	}
	var countryID *int64
	if f.Country != nil {
		id, err := f.Country.Resolve(ctx, db)
		if err != nil {
			return User{}, err
		}
		countryID = &id
	}
	id, err := factory.InsertRow(ctx, db, "users", "id",
		[]string{"name", "city_id", "country_id"}, []any{f.Name, cityID, countryID})
	if err != nil {
		return User{}, err
	}
	return User{ID: id, Name: f.Name, CityID: cityID, CountryID: countryID}, nil
}

func (UserFactory) IDForModel(m *User) int64 { return m.ID }
