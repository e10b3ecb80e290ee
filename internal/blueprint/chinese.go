package blueprint

var animals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// elements pairs each element across two consecutive stems.
var elements = [10]string{
	"Wood", "Wood", "Fire", "Fire", "Earth", "Earth",
	"Metal", "Metal", "Water", "Water",
}

// Chinese is the Chinese zodiac sign of a civil year.
type Chinese struct {
	Animal  string `json:"animal" yaml:"animal" toml:"animal"`
	Element string `json:"element" yaml:"element" toml:"element"`
	YinYang string `json:"yin_yang" yaml:"yin_yang" toml:"yin_yang"`
}

// ChineseOf returns the sign for the civil year. The year boundary is
// January 1, not the lunar new year.
func ChineseOf(year int) Chinese {
	yy := "Yin"
	if mod(year, 2) == 0 {
		yy = "Yang"
	}
	return Chinese{
		Animal:  animals[mod(year-4, 12)],
		Element: elements[mod(year-4, 10)],
		YinYang: yy,
	}
}

// mod returns a non-negative remainder.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
