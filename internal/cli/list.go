package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bastiangx/wordindex/internal/utils"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/fatih/color"
)

// WriteEntries prints entries as an aligned table followed by a count line.
func WriteEntries(w io.Writer, entries []suggest.Entry, colorize bool) error {
	header := color.New(color.Bold, color.FgCyan)
	word := color.New(color.FgHiBlue)
	if colorize {
		header.EnableColor()
		word.EnableColor()
	} else {
		header.DisableColor()
		word.DisableColor()
	}

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	width := max(utils.MaxWidth(texts), len("ENTRY"))

	offsetWidth := len("OFFSET")
	for _, e := range entries {
		offsetWidth = max(offsetWidth, len(strconv.Itoa(e.Offset)))
	}

	// pad before coloring, escape codes would count as width
	if _, err := fmt.Fprintf(w, "%s  %s  %s\n",
		header.Sprint(utils.PadRight("ENTRY", width)),
		header.Sprint(fmt.Sprintf("%*s", offsetWidth, "OFFSET")),
		header.Sprint("LENGTH")); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s  %*d  %6d\n",
			word.Sprint(utils.PadRight(e.Text, width)), offsetWidth, e.Offset, e.LineLength); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s entries\n", utils.FormatWithCommas(len(entries)))
	return err
}
