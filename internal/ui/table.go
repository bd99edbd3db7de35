package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Table renders rows under the given header as a boxed table on w.
func Table(w io.Writer, header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	rendered, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, rendered)

	return err
}
