package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower applies full Unicode lower-casing. A Caser is stateful, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// DeriveID builds a project id from its title: lower-cased, spaces replaced by underscores
func DeriveID(title string) string {
	return strings.ReplaceAll(lower(title), " ", "_")
}
