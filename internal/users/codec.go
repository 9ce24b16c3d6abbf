package users

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SkipFunc is told about every line Decode drops. lineNo is 1-based.
type SkipFunc func(lineNo int, err error)

// Encode writes list to w, one "username,password\n" line per record.
// Nothing is written if any record fails Validate.
func Encode(w io.Writer, list []User) error {
	for i, u := range list {
		if err := Validate(u); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	bw := bufio.NewWriter(w)
	for _, u := range list {
		if _, err := bw.WriteString(u.Line()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Marshal is Encode into a byte slice.
func Marshal(list []User) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads records from r in order. Blank lines are ignored; malformed
// lines are reported to skip (which may be nil) and dropped so one bad line
// never loses the rest. Only read errors are returned.
func Decode(r io.Reader, skip SkipFunc) ([]User, error) {
	br := bufio.NewReader(r)
	list := make([]User, 0)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", lineNo, err)
		}

		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			u, perr := ParseLine(trimmed)
			if perr != nil {
				if skip != nil {
					skip(lineNo, perr)
				}
			} else {
				list = append(list, u)
			}
		}

		if err != nil {
			return list, nil
		}
	}
}
