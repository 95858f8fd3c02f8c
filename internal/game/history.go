package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumber    = errors.New("invalid number")
	ErrRepeatedDigit    = errors.New("no repeats, please")
	ErrDuplicateAttempt = errors.New("duplicate guess")
	ErrNotCompliant     = errors.New("guess is not compliant")
)

// Attempt is one scored guess. Attempts are never changed after Record.
type Attempt struct {
	Guess int `json:"guess"`
	Cows  int `json:"cows"`
	Bulls int `json:"bulls"`
}

func (a Attempt) Result() Result {
	return Result{Cows: a.Cows, Bulls: a.Bulls}
}

// History is the ordered log of attempts of one game.
type History struct {
	attempts []Attempt
}

// Record appends a scored guess and returns the attempt count so far.
func (h *History) Record(guess int, res Result) int {
	h.attempts = append(h.attempts, Attempt{Guess: guess, Cows: res.Cows, Bulls: res.Bulls})
	return len(h.attempts)
}

func (h *History) Len() int {
	return len(h.attempts)
}

func (h *History) Attempts() []Attempt {
	return append([]Attempt(nil), h.attempts...)
}

func (h *History) Last() (Attempt, bool) {
	if len(h.attempts) == 0 {
		return Attempt{}, false
	}
	return h.attempts[len(h.attempts)-1], true
}

// Validate checks that candidate is a legal guess: GuessLength digits, no
// repeats, and not already tried. A nil error means the candidate is legal.
func (h *History) Validate(candidate int) error {
	if candidate < 0 {
		return ErrInvalidNumber
	}

	s := strconv.Itoa(candidate)
	if len(s) != GuessLength {
		return fmt.Errorf("%w: must have %d digits", ErrInvalidNumber, GuessLength)
	}

	for i := 0; i < GuessLength; i++ {
		if strings.LastIndexByte(s, s[i]) != i {
			return fmt.Errorf("%w: digit '%c' repeated", ErrRepeatedDigit, s[i])
		}
	}

	for i, a := range h.attempts {
		if a.Guess == candidate {
			return fmt.Errorf("%w: same as attempt #%d", ErrDuplicateAttempt, i+1)
		}
	}
	return nil
}

// CheckCompliance reports whether candidate could still be the secret: scored
// against every earlier guess it must reproduce the recorded cows and bulls.
func (h *History) CheckCompliance(candidate int) error {
	for _, a := range h.attempts {
		if Score(candidate, a.Guess) != a.Result() {
			return fmt.Errorf("%w with earlier guess of %d", ErrNotCompliant, a.Guess)
		}
	}
	return nil
}

// ParseGuess reads a guess typed by a human.
func ParseGuess(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, strings.TrimSpace(s))
	}
	return n, nil
}
