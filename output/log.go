package output

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	verboseTag      = "[verbose] "
	verboseTagColor = "\x1b[36m[verbose]\x1b[0m "
)

// NewLogger returns the verbose logger. When verbose is false every line is
// discarded; otherwise lines go to w, with a colored tag if w is a terminal.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, tagFor(w), log.Ltime|log.Lmicroseconds|log.Lmsgprefix)
}

func tagFor(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok {
		return verboseTag
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return verboseTagColor
	}
	return verboseTag
}
