package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToYMD1900Epoch(t *testing.T) {
	cases := []struct {
		name     string
		ord      float64
		leap1900 bool
		want     YMD
	}{
		{"day zero", 0, true, YMD{1900, 1, 0}},
		{"lotus bug day", 60, true, YMD{1900, 2, 29}},
		{"january 1900 under bug", 5, true, YMD{1900, 1, 5}},
		{"epoch start without bug", 1, false, YMD{1900, 1, 1}},
		{"well past 1900", 44197, true, YMD{2021, 1, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ToYMD(c.ord, Epoch1900, c.leap1900)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestToYMD1904Epoch(t *testing.T) {
	got := ToYMD(0, Epoch1904, false)
	assert.Equal(t, YMD{1904, 1, 1}, got)
}

func TestDateRoundTrip(t *testing.T) {
	serial := DateToSerial(2021, 1, 1, 0, 0, 0, 0)
	y, m, d, _, _, _ := DateFromSerial(serial, Epoch1900, true)
	assert.Equal(t, 2021, y)
	assert.Equal(t, 1, m)
	assert.Equal(t, 1, d)
}

func TestDateOverflows(t *testing.T) {
	assert.False(t, DateOverflows(100, Epoch1900))
	assert.True(t, DateOverflows(-1, Epoch1900))
	assert.True(t, DateOverflows(MaxSDate+1, Epoch1900))
	assert.False(t, DateOverflows(0, Epoch1317))
	assert.True(t, DateOverflows(MinLDate-1, Epoch1317))
}
