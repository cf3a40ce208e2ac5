package resource

import (
	"bufio"
	"io"

	"github.com/omerfuyar/shuildgo/shuilderr"
)

// MaxLineLength is the per-line cap enforced during loading; a longer line
// fails with shuilderr.ResourceTooLarge, matching spec §4.3's TooLong kind.
const MaxLineLength = 1 << 16

// Text is a single contiguous buffer holding every line of a text resource
// concatenated with its terminator kept, plus the count of lines it holds.
// Views returned by a Tokenizer slice directly into Data.
type Text struct {
	Data      string
	LineCount int
}

// LoadText opens relative under root, counts lines (each '\n'-terminated
// line, plus a final unterminated one if present) in a first pass,
// allocates one contiguous buffer sized to the sum of line lengths, and concatenates every line (terminator included) into it in a
// second pass, matching the reference ResourceText_Create two-pass scheme.
func LoadText(root *Root, relative string) (*Text, error) {
	f, err := root.Open(relative)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, l := range lines {
		total += len(l)
	}
	buf := make([]byte, 0, total)
	for _, l := range lines {
		buf = append(buf, l...)
	}

	return &Text{Data: string(buf), LineCount: len(lines)}, nil
}

// readLines splits on '\n', keeping the terminator on every line but the
// (optional) final unterminated one, so concatenation reproduces the
// original file content exactly.
func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReaderSize(r, MaxLineLength)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if len(line) > MaxLineLength {
			return nil, shuilderr.New(shuilderr.ResourceTooLarge, "resource.readLines", nil)
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, shuilderr.New(shuilderr.FileOpen, "resource.readLines", err)
		}
	}
	return lines, nil
}
