// Package calendar converts between spreadsheet date serial numbers and
// (year, month, day, time-of-day) components under the three epoch systems
// a number-format pattern can select: the 1900 system (optionally
// reproducing Lotus 1-2-3's fictitious February 29, 1900), the 1904 system,
// and the Hijri 1317 system.
package calendar

import "math"

// Epoch identifies which date system a pattern's date serial numbers are
// interpreted under.
type Epoch int

const (
	Epoch1904 Epoch = -1
	Epoch1900 Epoch = 1
	Epoch1317 Epoch = 6
)

// MinSDate and MaxSDate bound the 1900/1904-system ("short") serial range;
// MinLDate and MaxLDate bound the Hijri ("long") serial range.
const (
	MinSDate = 0.0
	MaxSDate = 2_958_466.0
	MinLDate = -694_324.0
	MaxLDate = 35_830_291.0
)

// YMD is a decomposed calendar date.
type YMD struct {
	Year  int
	Month int
	Day   int
}

// ToYMD decomposes a serial day ordinal (days since the epoch's reference
// point) into a calendar date under the given epoch system. leap1900
// controls whether the 1900 system emulates Lotus 1-2-3's bug that treats
// 1900 as a leap year.
func ToYMD(ord float64, epoch Epoch, leap1900 bool) YMD {
	intOrd := math.Floor(ord)
	switch epoch {
	case Epoch1904:
		return toYMD1900(intOrd+1462, false)
	case Epoch1317:
		return toYMD1317(intOrd)
	default:
		return toYMD1900(intOrd, leap1900)
	}
}

func toYMD1900(ord float64, leap1900 bool) YMD {
	if leap1900 && ord >= 0 {
		switch {
		case ord == 0:
			return YMD{1900, 1, 0}
		case ord == 60:
			return YMD{1900, 2, 29}
		case ord < 60:
			month := 1
			if ord >= 32 {
				month = 2
			}
			return YMD{1900, month, int(math.Mod(ord-1, 31)) + 1}
		}
	}

	l := ord + 68569 + 2415019
	n := math.Floor((4 * l) / 146097)
	l = l - math.Floor((146097*n+3)/4)
	i := math.Floor((4000 * (l + 1)) / 1461001)
	l = l - math.Floor((1461*i)/4) + 31
	j := math.Floor((80 * l) / 2447)
	day := l - math.Floor((2447*j)/80)
	l = math.Floor(j / 11)
	month := j + 2 - 12*l
	year := 100*(n-49) + i + l
	return YMD{int(year), int(month), int(day)}
}

// toYMD1317 decomposes a serial ordinal under the Hijri epoch (1317 AH as
// the reference point) using the tabular Islamic-calendar closed form:
// ord is first reduced into a 30-year cycle, then a within-cycle year,
// then a month via a fixed 29.5-day approximation, with a month-13
// rollover treated as day 30 of month 12.
func toYMD1317(ord float64) YMD {
	if ord <= 1 {
		return YMD{1317, 8, 29}
	}
	if ord < 60 {
		month := 9
		if ord >= 32 {
			month = 10
		}
		return YMD{1317, month, 1 + int(math.Mod(ord-2, 30))}
	}

	const y = 10631.0 / 30.0
	const shift1 = 8.01 / 60.0

	z := ord + 466935.0
	cyc := math.Floor(z / 10631.0)
	z = z - 10631.0*cyc
	j := math.Floor((z - shift1) / y)
	z = z - math.Floor(j*y+shift1)
	m := math.Floor((z + 28.5001) / 29.5)
	if int(m) == 13 {
		return YMD{int(30*cyc + j), 12, 30}
	}
	day := math.Round(z - math.Floor(29.5001*m-29.0))
	return YMD{int(30*cyc + j), int(m), int(day)}
}

const daysize = 86400.0

// DaysFromCivil implements Howard Hinnant's days-from-civil algorithm:
// the count of days since 1970-01-01 for the given proleptic-Gregorian
// (year, month, day), used as the common conversion point between calendar
// components and a serial day count.
func DaysFromCivil(year int, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = int64(y) / 400
	} else {
		era = int64(y-399) / 400
	}
	yoe := int64(y) - era*400
	var mShift int64
	if month > 2 {
		mShift = -3
	} else {
		mShift = 9
	}
	doy := (153*(int64(month)+mShift)+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DateToSerial computes a spreadsheet date serial number from calendar
// components plus a fractional time-of-day. Serials at or before the
// historical threshold are shifted by one extra day to emulate the Lotus
// 1-2-3 leap-year bug baked into every spreadsheet reader's 1900 system.
func DateToSerial(year, month, day int, hour, minute, second, millisecond float64) float64 {
	days := DaysFromCivil(year, month, day)
	seconds := hour*3600 + minute*60 + second
	fraction := (seconds + millisecond/1000) / daysize
	d := float64(days) + fraction

	offset := -25569.0
	if d <= -25509.0 {
		offset = -25568.0
	}
	return d - offset
}

// DateFromSerial decomposes a serial number into year, month, day, hour,
// minute and second components under the given epoch system.
func DateFromSerial(serial float64, epoch Epoch, leap1900 bool) (year, month, day, hour, minute, second int) {
	floor := math.Floor(serial)
	t := daysize * (serial - floor)
	time := math.Floor(t)
	if t-time > 0.9999 {
		time++
		if math.Abs(time-daysize) < 2.220446049250313e-16 {
			time = 0
		}
	}

	ymd := ToYMD(serial, epoch, leap1900)
	x := time
	if time < 0 {
		x = daysize + time
	}
	totalSeconds := int64(x)
	hh := (totalSeconds / 60 / 60) % 60
	mm := (totalSeconds / 60) % 60
	ss := totalSeconds % 60
	return ymd.Year, ymd.Month, ymd.Day, int(hh), int(mm), int(ss)
}

// DateOverflows reports whether serial falls outside the valid range for
// the given epoch (short range for 1900/1904 systems, long range for
// Hijri).
func DateOverflows(serial float64, epoch Epoch) bool {
	if epoch == Epoch1317 {
		return serial < MinLDate || serial > MaxLDate
	}
	return serial < MinSDate || serial > MaxSDate
}
