package model

// CountryRow represents a country in the database
type CountryRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Alpha2Code  string  `db:"alpha2code"`
	Alpha3Code  string  `db:"alpha3code"`
	Capital     string  `db:"capital"`
	Region      string  `db:"region"`
	Subregion   string  `db:"subregion"`
	Population  int     `db:"population"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
	Demonym     string  `db:"demonym"`
	Area        float64 `db:"area"`
	NumericCode string  `db:"numeric_code"`
	Flag        string  `db:"flag"`
}
