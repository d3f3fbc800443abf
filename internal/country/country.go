package country

// Country is immutable reference data; the API never writes it.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"countryCode"`
}
