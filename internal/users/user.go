// Package users defines the credential record and its line-oriented text
// encoding, shared by the flat-file and object-store backends.
package users

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/credstore/internal/common"
)

// User is one username/password pair. Username is the identity key and is
// compared byte for byte; Password is kept verbatim.
type User struct {
	Username string
	Password string
}

// Line renders u as "username,password" without a line terminator.
func (u User) Line() string {
	return u.Username + common.RecordSeparator + u.Password
}

// ParseLine is the inverse of Line. The username ends at the first comma;
// everything after it, further commas included, is the password. Lines with
// no comma or an empty field yield common.ErrorMalformedRecord.
func ParseLine(line string) (User, error) {
	name, password, ok := strings.Cut(line, common.RecordSeparator)
	if !ok {
		return User{}, fmt.Errorf("no separator: %w", common.ErrorMalformedRecord)
	}
	if name == "" || password == "" {
		return User{}, fmt.Errorf("empty field: %w", common.ErrorMalformedRecord)
	}
	return User{Username: name, Password: password}, nil
}

// Validate reports whether u survives a Line/ParseLine round trip. The
// username may not contain the separator or a line break, the password may
// not contain a line break, and neither may be empty.
func Validate(u User) error {
	switch {
	case u.Username == "" || u.Password == "":
		return fmt.Errorf("empty field: %w", common.ErrorMalformedRecord)
	case strings.Contains(u.Username, common.RecordSeparator):
		return fmt.Errorf("username contains %q: %w", common.RecordSeparator, common.ErrorMalformedRecord)
	case strings.ContainsAny(u.Username, "\r\n"):
		return fmt.Errorf("username contains a line break: %w", common.ErrorMalformedRecord)
	case strings.ContainsAny(u.Password, "\r\n"):
		return fmt.Errorf("password contains a line break: %w", common.ErrorMalformedRecord)
	}
	return nil
}

// Usernames returns the names of list in order.
func Usernames(list []User) []string {
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Username)
	}
	return names
}
