package bs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{"2082-09-22", NewDate(2082, 9, 22)},
		{"2082/9/2", NewDate(2082, 9, 2)},
		{" 2082-09-22\n", NewDate(2082, 9, 22)},
		{"२०८२-०९-२२", NewDate(2082, 9, 22)},
		{"２０８２-０９-２２", NewDate(2082, 9, 22)},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "2082", "2082-09", "2082--22", "2082-+9-22", "2082-09-2x", "20821-01-01", "1/2/3/4"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrMalformedDate, in)
	}
}

func TestDateStringAndCompare(t *testing.T) {
	d := NewDate(2082, 9, 2)
	assert.Equal(t, "2082-09-02", d.String())
	assert.Equal(t, d, MustParse(d.String()))

	assert.Equal(t, 0, d.Compare(NewDate(2082, 9, 2)))
	assert.True(t, d.Before(NewDate(2082, 10, 1)))
	assert.True(t, d.After(NewDate(2081, 12, 30)))
	assert.True(t, Date{}.IsZero())
	assert.Panics(t, func() { MustParse("nope") })
}
