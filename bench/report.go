package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders results as an aligned text table.
func WriteTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"WORKLOAD", "STORAGE", "OPS", "LEN", "INSERTED", "ERASED", "SPILLS", "ELAPSED", "FINGERPRINT", "ERROR"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, r := range results {
		table.Append([]string{
			r.Workload.Name,
			string(r.Workload.Storage),
			strconv.Itoa(r.Workload.Ops),
			strconv.Itoa(r.FinalLen),
			strconv.Itoa(r.Inserted),
			strconv.Itoa(r.Erased),
			strconv.Itoa(r.Spills),
			r.Elapsed.String(),
			fmt.Sprintf("%016x", r.Fingerprint),
			r.Err,
		})
	}

	table.Render()
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}
