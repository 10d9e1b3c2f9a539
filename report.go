package astar

import (
	"bufio"
	"io"
)

// Report lines.
const (
	ReportHeader = "Path found:"
	ReportNoPath = "No path found."
)

// WriteReport prints the header and one "(row, col)" line per path cell, or
// the single no-path line.
func WriteReport(w io.Writer, res Result) error {
	out := bufio.NewWriter(w)
	if !res.Found {
		out.WriteString(ReportNoPath + "\n")
		return out.Flush()
	}
	out.WriteString(ReportHeader + "\n")
	for _, c := range res.Path {
		out.WriteString(c.String() + "\n")
	}
	return out.Flush()
}
