// Package civlog parses the game's log lines into ledger events.
//
// The logs are free-form prose with the interesting values in fixed token
// positions, not a structured format; each parser here scans for its anchor
// tokens and rejects the line otherwise. Lines the parsers reject are
// simply not events: the logs interleave plenty of unrelated chatter.
package civlog

import (
	"strconv"
	"strings"

	"github.com/civtrack/goldwatch"
	"github.com/civtrack/goldwatch/turns"
)

// Strategic resources trade by count at a price, so a RESOURCE_* deal line
// only means a luxury exchange when it is none of these.
var strategicResources = []string{
	"RESOURCE_HORSES",
	"RESOURCE_IRON",
	"RESOURCE_NITER",
	"RESOURCE_OIL",
	"RESOURCE_ALUMINUM",
	"RESOURCE_COAL",
	"RESOURCE_URANIUM",
}

// lastInt parses the final whitespace-separated token of a section, the
// position the deals log keeps its values in.
func lastInt(section string) (int, bool) {
	fields := strings.Fields(section)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseTurnLine extracts the turn number from a deals-log line like
//
//	Turn 12, Enacting Deal id 1002 for player 6 and 4
func ParseTurnLine(line string) (turns.Turn, bool) {
	if !strings.Contains(line, "Turn") {
		return 0, false
	}
	fields := strings.Fields(strings.SplitN(line, ",", 2)[0])
	for i, f := range fields {
		if f == "Turn" && i+1 < len(fields) {
			n, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return 0, false
			}
			return turns.Turn(n), true
		}
	}
	return 0, false
}

// ParseDealLine extracts a gold deal from a deals-log line like
//
//	, Enacting Deal Item ID 2, from player 9, to player 7, type Gold, subType 0 (), value type YIELD_GOLD, amount 5, duration 0
//
// The deal's turn is left zero; the caller tracks the current turn from the
// surrounding ParseTurnLine lines.
func ParseDealLine(line string) (goldwatch.Deal, bool) {
	if !strings.Contains(line, "YIELD_GOLD") {
		return goldwatch.Deal{}, false
	}
	var d goldwatch.Deal
	var hasFrom, hasTo, hasAmount, hasDuration bool
	for _, section := range strings.Split(line, ",") {
		switch {
		case strings.Contains(section, "from player"):
			d.From, hasFrom = lastInt(section)
		case strings.Contains(section, "to player"):
			d.To, hasTo = lastInt(section)
		case strings.Contains(section, "amount"):
			var n int
			n, hasAmount = lastInt(section)
			d.Amount = goldwatch.A(n)
		case strings.Contains(section, "duration"):
			d.Duration, hasDuration = lastInt(section)
		}
	}
	if !hasFrom || !hasTo || !hasAmount || !hasDuration {
		return goldwatch.Deal{}, false
	}
	return d, true
}

// ParseLuxLine extracts a luxury exchange from a RESOURCE_* deal line,
// rejecting strategic resources.
func ParseLuxLine(line string) (goldwatch.LuxDeal, bool) {
	i := strings.Index(line, "RESOURCE")
	if i < 0 {
		return goldwatch.LuxDeal{}, false
	}
	resource := line[i:]
	for _, strategic := range strategicResources {
		if strings.HasPrefix(resource, strategic) {
			return goldwatch.LuxDeal{}, false
		}
	}
	var d goldwatch.LuxDeal
	var hasFrom, hasTo bool
	for _, section := range strings.Split(line, ",") {
		switch {
		case strings.Contains(section, "from player"):
			d.From, hasFrom = lastInt(section)
		case strings.Contains(section, "to player"):
			d.To, hasTo = lastInt(section)
		}
	}
	if !hasFrom || !hasTo {
		return goldwatch.LuxDeal{}, false
	}
	return d, true
}

// ParseSlotLine extracts a player's identity from a game-core line like
//
//	Line 410: [2690167.701] Player 0: Civilization - CIVILIZATION_INCA (-1955030529)  Leader - LEADER_PACHACUTI (1425321953), - Level - CIVILIZATION_LEVEL_FULL_CIV, SlotStatus - Human
//
// Only human slots are identities; AI and city-state lines are rejected.
func ParseSlotLine(line string) (goldwatch.SlotInfo, bool) {
	if !strings.Contains(line, "SlotStatus - Human") {
		return goldwatch.SlotInfo{}, false
	}
	fields := strings.Fields(line)

	var info goldwatch.SlotInfo
	var hasSlot bool
	for i, f := range fields {
		if f == "Player" && i+1 < len(fields) {
			n, err := strconv.Atoi(strings.TrimRight(fields[i+1], ":"))
			if err == nil {
				info.Slot, hasSlot = n, true
			}
			break
		}
	}
	for _, f := range fields {
		if strings.Contains(f, "CIVILIZATION") {
			info.RawCiv = strings.Trim(f, ",")
			break
		}
	}
	if !hasSlot || info.RawCiv == "" {
		return goldwatch.SlotInfo{}, false
	}
	parts := strings.Split(info.RawCiv, "_")
	if len(parts) < 2 {
		return goldwatch.SlotInfo{}, false
	}
	info.Name = parts[1]
	return info, true
}

// ParseStatsLine extracts a gold-per-turn report from a Player_Stats.csv
// row. Column 0 is the game turn (one ahead of the ledger's numbering),
// column 1 the raw civilization key, column 16 the gold yield. The header
// row starts with "Game" and is rejected.
func ParseStatsLine(line string) (goldwatch.Stats, bool) {
	cols := strings.Split(line, ",")
	if len(cols) < 17 {
		return goldwatch.Stats{}, false
	}
	if strings.HasPrefix(strings.TrimSpace(cols[0]), "Game") {
		return goldwatch.Stats{}, false
	}
	turn, err := strconv.Atoi(strings.TrimSpace(cols[0]))
	if err != nil {
		return goldwatch.Stats{}, false
	}
	gpt, err := strconv.Atoi(strings.TrimSpace(cols[16]))
	if err != nil {
		return goldwatch.Stats{}, false
	}
	return goldwatch.Stats{
		RawCiv: strings.TrimSpace(cols[1]),
		Turn:   turns.Turn(turn - 1),
		GPT:    gpt,
	}, true
}
