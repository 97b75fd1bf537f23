package rendering

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// bdDivisions maps host state codes for Bangladesh to division names. The
// host only stores the code; documents print the full name.
var bdDivisions = map[string]string{
	"BD-05": "Barishal",
	"BD-01": "Chattogram",
	"BD-02": "Dhaka",
	"BD-06": "Khulna",
	"BD-08": "Mymensingh",
	"BD-03": "Rajshahi",
	"BD-04": "Rangpur",
	"BD-07": "Sylhet",
}

// CountryName resolves an ISO 3166-1 alpha-2 code to its English display
// name, falling back to the raw code when unknown.
func CountryName(code string) string {
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return code
}

// StateName resolves a host state code to a printable name. Bangladesh
// divisions are resolved from the built-in table; other codes pass through
// unchanged since the host stores free-form names for most countries.
func StateName(country, state string) string {
	if country == "BD" {
		if name, ok := bdDivisions[state]; ok {
			return name
		}
	}
	return state
}
