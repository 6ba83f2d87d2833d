// errors.go - Recognises unique constraint violations across drivers

package database

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	sqliteUnique   = regexp.MustCompile(`UNIQUE constraint failed: \w+\.(\w+)`)
	postgresUnique = regexp.MustCompile(`unique constraint "idx_\w+?_(\w+)"`)
	mysqlUnique    = regexp.MustCompile(`Duplicate entry .* for key '(?:\w+\.)?idx_\w+?_(\w+)'`)
)

// columnFields maps unique column names to the JSON field names the API uses
var columnFields = map[string]string{
	"username":     "username",
	"email":        "email",
	"phone_number": "phoneNumber",
}

// UniqueViolation reports whether err is a unique constraint violation and,
// when the driver message names it, which API field caused it.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	msg := err.Error()

	for _, re := range []*regexp.Regexp{sqliteUnique, postgresUnique, mysqlUnique} {
		if m := re.FindStringSubmatch(msg); m != nil {
			return fieldFor(m[1]), true
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") {
		return "", true
	}
	return "", false
}

func fieldFor(column string) string {
	if f, ok := columnFields[column]; ok {
		return f
	}
	for col, f := range columnFields {
		if strings.HasSuffix(col, "_"+column) {
			return f
		}
	}
	return column
}
