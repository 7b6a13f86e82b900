package renderer

import (
	"strings"

	"github.com/civtrack/goldwatch"
	"github.com/guptarohit/asciigraph"
)

// Chart renders every player's net-balance series as a line chart, one
// chart per player. Players with no closed turns yet are skipped.
func Chart(series []goldwatch.NetSeries) string {
	var b strings.Builder
	for _, s := range series {
		var data []float64
		for _, net := range s.Points {
			data = append(data, net.InexactFloat64())
		}
		if len(data) == 0 {
			continue
		}
		b.WriteString(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(s.Name),
		))
		b.WriteString("\n\n")
	}
	return b.String()
}
