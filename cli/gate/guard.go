package gate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tunepath-askeva/eram/pkg/cli"
)

// Guard asks the operator to retype a phrase before a bulk change runs.
type Guard struct {
	phrase string
	answer *string
	reader *bufio.Reader
}

func MakeGuard(phrase string, reader *bufio.Reader) Guard {
	return Guard{
		phrase: phrase,
		reader: reader,
	}
}

func (g *Guard) CaptureInput(summary string) error {
	cli.Warningln(summary)
	cli.Warning(fmt.Sprintf("Type %q to continue: ", g.phrase))

	input, err := g.reader.ReadString('\n')

	if err != nil && !(err == io.EOF && input != "") {
		return fmt.Errorf("error reading input: %v", err)
	}

	input = strings.TrimSpace(input)

	if len(input) == 0 {
		return fmt.Errorf("confirmation cannot be empty")
	}

	if len(input) > 1024 {
		return fmt.Errorf("confirmation is too long")
	}

	g.answer = &input

	return nil
}

func (g *Guard) Rejects() bool {
	if g.answer == nil {
		return true
	}

	return *g.answer != g.phrase
}
