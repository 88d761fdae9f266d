// Package output renders process listings for the terminal.
package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Row is one process line in the listing.
type Row struct {
	Pid     int32
	Comm    string
	Cmdline string
	// Note annotates processes whose command line could not be fetched,
	// e.g. "access denied".
	Note string
}

// WriteTable renders rows as an aligned, borderless table.
func WriteTable(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "COMMAND", "CMDLINE"})
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range rows {
		cmdline := r.Cmdline
		if r.Note != "" {
			cmdline = "(" + r.Note + ")"
		}
		table.Append([]string{strconv.Itoa(int(r.Pid)), r.Comm, cmdline})
	}
	table.Render()
}
