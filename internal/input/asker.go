package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Asker prompts on out and reads answers line by line from in.
type Asker struct {
	in   *bufio.Scanner
	out  io.Writer
	echo bool
}

// NewAsker wraps in/out. Lines read from something that is not a terminal are
// echoed after the prompt, so piped sessions still read like a dialogue.
func NewAsker(in io.Reader, out io.Writer) *Asker {
	return &Asker{
		in:   bufio.NewScanner(in),
		out:  out,
		echo: !isTerminal(in),
	}
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(a.out, "%s > ", question)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(a.out)
		return "", io.EOF
	}

	line := a.in.Text()
	if a.echo {
		fmt.Fprintln(a.out, line)
	}
	return line, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
