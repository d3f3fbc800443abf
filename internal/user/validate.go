package user

import (
	"regexp"
	"strings"
)

var (
	genderPattern      = regexp.MustCompile(`^Male$|^Female$`)
	countryNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	countryCodePattern = regexp.MustCompile(`^[a-z]+$`)
	phonePattern       = regexp.MustCompile(`^\+?[0-9]+$`)
)

// validate checks each field of the transfer record against its constraint
// and returns the first violation message. Field order: gender, name,
// birthday, country name, country code, phone number.
func validate(dto Dto) string {
	if dto.Gender != nil {
		if !genderPattern.MatchString(*dto.Gender) {
			return "Gender can be only Male or Female"
		}
		if len(*dto.Gender) < 4 || len(*dto.Gender) > 6 {
			return "Gender must be minimum 4 characters and maximum 5 characters long"
		}
	}

	if strings.TrimSpace(dto.Name) == "" {
		return "Name must not be blank"
	}
	if len(dto.Name) < 3 || len(dto.Name) > 50 {
		return "Name must be minimum 3 characters and maximum 50 characters long"
	}

	if dto.Birthday == nil {
		return "Birthday must not be null"
	}

	if dto.CountryName != nil {
		if !countryNamePattern.MatchString(*dto.CountryName) {
			return "Country name can be only be alphanumerical characters"
		}
		if len(*dto.CountryName) < 3 || len(*dto.CountryName) > 50 {
			return "Country name must be minimum 3 characters and maximum 50 characters long"
		}
	}

	if dto.CountryCode != nil {
		if !countryCodePattern.MatchString(*dto.CountryCode) {
			return "Country code can be only be lower case alphanumerical characters"
		}
		if len(*dto.CountryCode) != 2 {
			return "Country code must be 2 characters long"
		}
	}

	if dto.PhoneNumber != nil {
		if !phonePattern.MatchString(*dto.PhoneNumber) {
			return "Can be + followed by a number or simply a number"
		}
		if len(*dto.PhoneNumber) < 2 || len(*dto.PhoneNumber) > 50 {
			return "Phone number must be minimum 2 characters and maximum 50 characters long"
		}
	}

	return ""
}
