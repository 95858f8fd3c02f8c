package game

// Solver is the per-game state shared by every guessing strategy: the
// generator it draws from and the attempts scored so far.
type Solver struct {
	gen     *Generator
	history History
}

func NewSolver(gen *Generator) *Solver {
	return &Solver{gen: gen}
}

// Probable draws a guess from the seed grid. It is not checked against history.
func (s *Solver) Probable() (int, error) {
	return s.gen.Generate()
}

func (s *Solver) Validate(candidate int) error {
	return s.history.Validate(candidate)
}

func (s *Solver) CheckCompliance(candidate int) error {
	return s.history.CheckCompliance(candidate)
}

// Acceptable reports the first reason candidate cannot be played next, or nil.
func (s *Solver) Acceptable(candidate int) error {
	if err := s.history.Validate(candidate); err != nil {
		return err
	}
	return s.history.CheckCompliance(candidate)
}

func (s *Solver) Record(guess int, res Result) int {
	return s.history.Record(guess, res)
}

func (s *Solver) History() *History {
	return &s.history
}
