package game

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	GuessLength      = 4    // digits in a secret/guess
	TotalDigits      = 10   // 0..9
	TotalProbability = 1000 // weight budget of one grid row at seed time

	MinGuess = 1023
	MaxGuess = 9876
)

// Result is the bulls/cows outcome of one guess.
type Result struct {
	Cows  int `json:"cows"`
	Bulls int `json:"bulls"`
}

func (r Result) Solved() bool {
	return r.Bulls == GuessLength
}

// String renders the short form used in the transcript: "1C2B", "4B", "None".
func (r Result) String() string {
	if r.Cows+r.Bulls == 0 {
		return "None"
	}
	var b strings.Builder
	if r.Cows > 0 {
		b.WriteString(strconv.Itoa(r.Cows) + "C")
	}
	if r.Bulls > 0 {
		b.WriteString(strconv.Itoa(r.Bulls) + "B")
	}
	return b.String()
}

// Score compares guess against secret. A guess digit in the same position is a
// bull, otherwise a digit present anywhere in the secret is a cow.
func Score(secret, guess int) Result {
	s := digits(secret)
	g := digits(guess)

	var res Result
	for i := 0; i < GuessLength; i++ {
		switch {
		case g[i] == s[i]:
			res.Bulls++
		case strings.IndexByte(s, g[i]) >= 0:
			res.Cows++
		}
	}
	return res
}

// digits renders n zero-padded to GuessLength.
func digits(n int) string {
	return fmt.Sprintf("%0*d", GuessLength, n)
}
