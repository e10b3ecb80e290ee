package blueprint

import "time"

// Numerology holds the date-derived numbers.
type Numerology struct {
	LifePath int  `json:"life_path" yaml:"life_path" toml:"life_path"`
	Master   bool `json:"master" yaml:"master" toml:"master"`
	BirthDay int  `json:"birth_day" yaml:"birth_day" toml:"birth_day"`
}

// LifePath sums the digits of YYYYMMDD and keeps reducing until a single
// digit or a master number (11, 22, 33) remains.
func LifePath(date time.Time) int {
	total := digitSum(date.Year()) + digitSum(int(date.Month())) + digitSum(date.Day())
	for total > 9 && !isMaster(total) {
		total = digitSum(total)
	}
	return total
}

// NumerologyOf returns the numbers for a civil birth date.
func NumerologyOf(date time.Time) Numerology {
	lp := LifePath(date)
	return Numerology{LifePath: lp, Master: isMaster(lp), BirthDay: date.Day()}
}

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
