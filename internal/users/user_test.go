package users

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/dmitrijs2005/credstore/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    User
		wantErr bool
	}{
		{name: "plain", line: "alice,pw1", want: User{"alice", "pw1"}},
		{name: "commas stay in password", line: "bob,a,b,,c", want: User{"bob", "a,b,,c"}},
		{name: "spaces kept verbatim", line: "carol, secret ", want: User{"carol", " secret "}},
		{name: "no separator", line: "dave", wantErr: true},
		{name: "empty username", line: ",pw", wantErr: true},
		{name: "empty password", line: "erin,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrorMalformedRecord))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.Line())
		})
	}
}

func TestEncodeDecode_RoundTripPreservesOrder(t *testing.T) {
	in := []User{
		{"zed", "last,but,first"},
		{"alice", "pw1"},
		{"Alice", "PW,"},
		{"bob", "ünïcødé,✓"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))

	data, err := Marshal(in)
	require.NoError(t, err)
	require.Equal(t, string(data), buf.String())

	out, err := Decode(&buf, func(int, error) { t.Fatal("nothing should be skipped") })
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{name: "plain", user: User{"alice", "pw"}},
		{name: "commas in password", user: User{"alice", "a,b,"}},
		{name: "comma in username", user: User{"a,b", "pw"}, wantErr: true},
		{name: "newline in username", user: User{"a\nb", "pw"}, wantErr: true},
		{name: "carriage return in username", user: User{"ab\r", "pw"}, wantErr: true},
		{name: "newline in password", user: User{"alice", "p\nw"}, wantErr: true},
		{name: "carriage return in password", user: User{"alice", "pw\r"}, wantErr: true},
		{name: "empty username", user: User{"", "pw"}, wantErr: true},
		{name: "empty password", user: User{"alice", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.user)
			if !tt.wantErr {
				require.NoError(t, err)

				back, perr := ParseLine(tt.user.Line())
				require.NoError(t, perr)
				assert.Equal(t, tt.user, back)
				return
			}
			require.ErrorIs(t, err, common.ErrorMalformedRecord)
		})
	}
}

func TestEncode_RejectsUnencodableRecordAndWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []User{{"alice", "pw"}, {"a,b", "pw"}})
	require.ErrorIs(t, err, common.ErrorMalformedRecord)
	assert.Empty(t, buf.String())

	_, err = Marshal([]User{{"bob", "line\nbreak"}})
	require.ErrorIs(t, err, common.ErrorMalformedRecord)
}

func TestDecode_SkipsMalformedAndContinues(t *testing.T) {
	src := "alice,pw1\nbroken\n\nbob,pw2\r\n,nope\ncarol,pw3"

	var skipped []int
	out, err := Decode(strings.NewReader(src), func(lineNo int, err error) {
		require.ErrorIs(t, err, common.ErrorMalformedRecord)
		skipped = append(skipped, lineNo)
	})
	require.NoError(t, err)

	assert.Equal(t, []User{{"alice", "pw1"}, {"bob", "pw2"}, {"carol", "pw3"}}, out)
	assert.Equal(t, []int{2, 5}, skipped)
}

func TestDecode_EmptyInput(t *testing.T) {
	out, err := Decode(strings.NewReader(""), nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestDecode_ReadError(t *testing.T) {
	_, err := Decode(iotest.ErrReader(errors.New("disk gone")), nil)
	require.Error(t, err)
}

func TestUsernames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Usernames([]User{{"a", "1"}, {"b", "2"}}))
	assert.Equal(t, []string{}, Usernames(nil))
}
