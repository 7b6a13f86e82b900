package civlog

import (
	"testing"

	"github.com/civtrack/goldwatch"
)

func TestParseTurnLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want int
		ok   bool
	}{
		{
			name: "enacting deal",
			line: "Turn 12, Enacting Deal id 1002 for player 6 and 4",
			want: 12,
			ok:   true,
		},
		{
			name: "no turn token",
			line: ", Enacting Deal Item ID 2, from player 9, to player 7",
			ok:   false,
		},
		{
			name: "turn without number",
			line: "Turn , something",
			ok:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTurnLine(tc.line)
			if ok != tc.ok || int(got) != tc.want {
				t.Errorf("ParseTurnLine(%q) = %v, %v want %v, %v", tc.line, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestParseDealLine(t *testing.T) {
	line := ", Enacting Deal Item ID 2, from player 9, to player 7, type Gold, subType 0 (), value type YIELD_GOLD, amount 5, duration 0"
	deal, ok := ParseDealLine(line)
	if !ok {
		t.Fatalf("ParseDealLine(%q) not ok", line)
	}
	want := goldwatch.Deal{From: 9, To: 7, Amount: goldwatch.A(5), Duration: 0}
	if deal.From != want.From || deal.To != want.To || deal.Duration != want.Duration || !deal.Amount.Equal(want.Amount) {
		t.Errorf("ParseDealLine(%q) = %+v want %+v", line, deal, want)
	}

	gpt := ", Enacting Deal Item ID 3, from player 2, to player 4, type Gold, subType 0 (), value type YIELD_GOLD, amount 10, duration 30"
	deal, ok = ParseDealLine(gpt)
	if !ok || deal.Duration != 30 {
		t.Errorf("ParseDealLine(%q) = %+v, %v want duration 30", gpt, deal, ok)
	}

	if _, ok := ParseDealLine(", from player 1, to player 2, amount 5, duration 0"); ok {
		t.Error("ParseDealLine accepted a line without YIELD_GOLD")
	}
	if _, ok := ParseDealLine("value type YIELD_GOLD, from player 1, to player 2"); ok {
		t.Error("ParseDealLine accepted a line without amount and duration")
	}
}

func TestParseLuxLine(t *testing.T) {
	lux := ", Enacting Deal Item ID 4, from player 3, to player 5, type Resource, value type RESOURCE_SILK, amount 1, duration 30"
	deal, ok := ParseLuxLine(lux)
	if !ok || deal.From != 3 || deal.To != 5 {
		t.Errorf("ParseLuxLine(%q) = %+v, %v want from 3 to 5", lux, deal, ok)
	}

	// strategic resources are not luxuries
	for _, resource := range []string{"RESOURCE_HORSES", "RESOURCE_IRON", "RESOURCE_NITER", "RESOURCE_OIL", "RESOURCE_ALUMINUM", "RESOURCE_COAL", "RESOURCE_URANIUM"} {
		line := ", from player 3, to player 5, value type " + resource + ", amount 2, duration 30"
		if _, ok := ParseLuxLine(line); ok {
			t.Errorf("ParseLuxLine accepted strategic %s", resource)
		}
	}

	if _, ok := ParseLuxLine("no resource here"); ok {
		t.Error("ParseLuxLine accepted a line without RESOURCE")
	}
}

func TestParseSlotLine(t *testing.T) {
	line := "Line 410: [2690167.701] Player 0: Civilization - CIVILIZATION_INCA (-1955030529)  Leader - LEADER_PACHACUTI (1425321953), - Level - CIVILIZATION_LEVEL_FULL_CIV, SlotStatus - Human"
	info, ok := ParseSlotLine(line)
	if !ok {
		t.Fatalf("ParseSlotLine(%q) not ok", line)
	}
	if info.Slot != 0 || info.Name != "INCA" || info.RawCiv != "CIVILIZATION_INCA" {
		t.Errorf("ParseSlotLine = %+v want slot 0, INCA, CIVILIZATION_INCA", info)
	}

	ai := "Player 5: Civilization - CIVILIZATION_ROME, SlotStatus - AI"
	if _, ok := ParseSlotLine(ai); ok {
		t.Error("ParseSlotLine accepted a non-human slot")
	}
}

func TestParseStatsLine(t *testing.T) {
	line := "5, CIVILIZATION_INCA, 3, 12, 8, 6, 4, 0, 0, 1, 40, 10, 250, 100, 12, 9, 14, 30, 55, 20"
	stats, ok := ParseStatsLine(line)
	if !ok {
		t.Fatalf("ParseStatsLine(%q) not ok", line)
	}
	// the csv's game turn is one ahead of the ledger's numbering
	if stats.Turn != 4 {
		t.Errorf("stats.Turn = %v want 4", stats.Turn)
	}
	if stats.RawCiv != "CIVILIZATION_INCA" {
		t.Errorf("stats.RawCiv = %q want CIVILIZATION_INCA", stats.RawCiv)
	}
	if stats.GPT != 14 {
		t.Errorf("stats.GPT = %d want 14", stats.GPT)
	}

	header := "Game Turn, Player, Num Cities, Population, Techs, Civics, Land Units, corps, Armies, Naval Units, Owned, Improved, Gold, Faith, Science, Culture, Gold, Faith, Production, Food"
	if _, ok := ParseStatsLine(header); ok {
		t.Error("ParseStatsLine accepted the header row")
	}
	if _, ok := ParseStatsLine("1, 2, 3"); ok {
		t.Error("ParseStatsLine accepted a short row")
	}
}

func TestFeed_HandleDealLine(t *testing.T) {
	l := goldwatch.NewLedger(goldwatch.DefaultConfig())
	f := NewFeed(l)

	f.HandleDealLine("Turn 3, Enacting Deal id 1002 for player 0 and 1")
	f.HandleDealLine(", Enacting Deal Item ID 2, from player 0, to player 1, type Gold, subType 0 (), value type YIELD_GOLD, amount 25, duration 0")

	if got := l.CurrentTurn(); got != 3 {
		t.Errorf("CurrentTurn() = %v want 3", got)
	}
	if got := l.Player(0).Summed().Sent(); !got.Equal(goldwatch.A(25)) {
		t.Errorf("player 0 sent = %v want 25", got)
	}

	f.HandleDealLine(", Enacting Deal Item ID 3, from player 1, to player 0, type Resource, value type RESOURCE_SILK, amount 1, duration 30")
	if got := l.Player(1).Summed().LuxesSent(); got != 1 {
		t.Errorf("player 1 luxes sent = %d want 1", got)
	}
}

func TestFeed_StatsNeedIdentity(t *testing.T) {
	l := goldwatch.NewLedger(goldwatch.DefaultConfig())
	f := NewFeed(l)

	row := "3, CIVILIZATION_INCA, 1, 1, 1, 1, 1, 0, 0, 0, 9, 2, 50, 0, 3, 2, 8, 4, 10, 6"

	// before identity resolution the row is dropped
	f.HandleStatsLine(row)
	if got := len(l.Players()); got != 0 {
		t.Fatalf("len(Players()) = %d want 0", got)
	}

	f.HandleCoreLine("Player 2: Civilization - CIVILIZATION_INCA (-19)  Leader - LEADER_PACHACUTI (14), SlotStatus - Human")
	f.HandleStatsLine(row)

	rec, ok := l.Player(2).Record(2)
	if !ok {
		t.Fatal("player 2 has no record at turn 2")
	}
	if rec.GPT != 8 {
		t.Errorf("Record(2).GPT = %d want 8", rec.GPT)
	}
}
