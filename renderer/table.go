// Package renderer turns ledger reports into markdown and terminal charts.
package renderer

import (
	"bytes"
	"strconv"

	"github.com/civtrack/goldwatch"
	md "github.com/nao1215/markdown"
)

// Table renders a TableReport to a markdown string. Figures that are good
// for a player (non-negative nets and income) come out bold.
func Table(r *goldwatch.TableReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Turn.String())

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Player",
			"Luxes Sent",
			"Luxes Received",
			"Lux Net",
			"Sent",
			"Sent Adj.",
			"Received",
			"Received Adj.",
			"GPT",
			"Gold to Date",
			"Net",
			"Net Adj.",
		},
		Rows: [][]string{},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Name,
			strconv.Itoa(row.LuxesSent),
			strconv.Itoa(row.LuxesReceived),
			emphasized(int64(row.LuxNet)),
			row.Sent.String(),
			strconv.FormatInt(row.SentAdjusted, 10),
			row.Received.String(),
			strconv.FormatInt(row.ReceivedAdjusted, 10),
			emphasized(int64(row.GPT)),
			emphasized(int64(row.CumulativeGPT)),
			emphasized(row.Net.Floor()),
			emphasized(row.NetAdjusted),
		})
	}
	doc.Table(table)

	return doc.String()
}

func emphasized(v int64) string {
	s := strconv.FormatInt(v, 10)
	if goldwatch.Favorable(v) {
		return md.Bold(s)
	}
	return s
}
