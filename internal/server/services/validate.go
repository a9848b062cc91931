package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/starwars/internal/common"
)

// Column widths from the migrations.
const (
	maxEmailLen      = 120
	maxNameLen       = 80
	maxHeightLen     = 10
	maxMassLen       = 10
	maxGenderLen     = 20
	maxBirthYearLen  = 20
	maxClimateLen    = 50
	maxTerrainLen    = 50
	maxPopulationLen = 20
)

func required(field, value string, maxLen int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", common.NewValidationError(field, "")
	}
	if err := maxLength(field, v, maxLen); err != nil {
		return "", err
	}
	return v, nil
}

// optional trims value and turns blanks into NULL.
func optional(field string, value *string, maxLen int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil, nil
	}
	if err := maxLength(field, v, maxLen); err != nil {
		return nil, err
	}
	return &v, nil
}

// maxLength counts characters, as VARCHAR(n) does.
func maxLength(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return common.NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return nil
}

func positiveID(field string, id int64) error {
	if id <= 0 {
		return common.NewValidationError(field, "must be a positive integer")
	}
	return nil
}
