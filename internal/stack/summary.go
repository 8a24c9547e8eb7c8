package stack

import (
	"github.com/olekukonko/tablewriter"
	"io"
)

func RenderOutputs(w io.Writer, outputs Outputs) {
	var data [][]string
	for _, key := range outputs.Keys() {
		data = append(data, []string{key, outputs[key]})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Resource", "Identifier"})
	table.SetRowLine(true)
	table.AppendBulk(data)
	table.Render()
}
