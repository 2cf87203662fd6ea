package schema

// LocationReport is one row of a daily situation report.
type LocationReport struct {
	CountryRegion string  `json:"country_region"`
	CombinedKey   string  `json:"combined_key"`
	Latitude      float64 `json:"lat"`
	Longitude     float64 `json:"lon"`
	Confirmed     float64 `json:"confirmed"`
}

// CountyReport is the latest per capita case rate of one US county.
type CountyReport struct {
	FIPS           string  `json:"fips"`
	CasesPerCapita float64 `json:"cases_per_capita"`
}
