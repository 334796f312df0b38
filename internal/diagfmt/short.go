package diagfmt

import (
	"fmt"
	"io"

	"docstyle/internal/diag"
)

// Short prints one line per diagnostic:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
func Short(w io.Writer, bag *diag.Bag, opts ShortOpts) error {
	for _, d := range bag.Items() {
		if _, err := fmt.Fprintln(w, header(d, opts.PathMode, opts.BaseDir)); err != nil {
			return err
		}
	}
	return nil
}

func header(d diag.Diagnostic, mode PathMode, baseDir string) string {
	return fmt.Sprintf("%s:%d:%d: %s %s: %s",
		formatPath(d.Primary.File, mode, baseDir),
		d.Primary.Start.Line,
		d.Primary.Start.Col()+1,
		d.Severity,
		d.Code.ID(),
		d.Message,
	)
}
