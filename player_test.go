package goldwatch

import (
	"testing"

	"github.com/civtrack/goldwatch/turns"
)

func TestPlayer_SendUpdatesBothSheets(t *testing.T) {
	p := newPlayer(0, DefaultConfig())
	p.sendGold(1, A(40))
	p.sendGold(2, A(10))
	p.receiveGold(1, A(5))
	p.sendLux(1)

	if !p.Summed().Sent().Equal(A(50)) {
		t.Errorf("Summed().Sent() = %v want 50", p.Summed().Sent())
	}
	if !p.Relationship(1).Sent().Equal(A(40)) {
		t.Errorf("Relationship(1).Sent() = %v want 40", p.Relationship(1).Sent())
	}
	if !p.Relationship(2).Sent().Equal(A(10)) {
		t.Errorf("Relationship(2).Sent() = %v want 10", p.Relationship(2).Sent())
	}
	if !p.Relationship(1).Received().Equal(A(5)) {
		t.Errorf("Relationship(1).Received() = %v want 5", p.Relationship(1).Received())
	}
	if p.Relationship(1).LuxesSent() != 1 {
		t.Errorf("Relationship(1).LuxesSent() = %d want 1", p.Relationship(1).LuxesSent())
	}
}

func TestPlayer_CloseTurnSnapshotsByValue(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(0, cfg)
	p.sendGold(1, A(100))
	p.closeTurn(3, cfg.InterestRate)

	rec, ok := p.Record(3)
	if !ok {
		t.Fatal("Record(3) missing after closeTurn(3)")
	}
	// snapshot was taken before the tick
	if !rec.Summed.SentWithInterest().Equal(A(100)) {
		t.Errorf("snapshot SentWithInterest() = %v want 100", rec.Summed.SentWithInterest())
	}
	// the live sheet ticked
	if want := A(100).Mul(cfg.InterestRate); !p.Summed().SentWithInterest().Equal(want) {
		t.Errorf("live SentWithInterest() = %v want %v", p.Summed().SentWithInterest(), want)
	}
	// and the snapshot is a copy, not a reference to the live sheet
	p.sendGold(1, A(1))
	if !rec.Summed.Sent().Equal(A(100)) {
		t.Errorf("snapshot Sent() = %v want 100 after later deal", rec.Summed.Sent())
	}
	// a turn without a stats report gets the baseline gpt
	if rec.GPT != cfg.BaselineGPT {
		t.Errorf("snapshot GPT = %d want baseline %d", rec.GPT, cfg.BaselineGPT)
	}
}

func TestPlayer_RecordGPT(t *testing.T) {
	p := newPlayer(0, DefaultConfig())

	p.recordGPT(1, 10)
	p.recordGPT(2, 7)
	p.recordGPT(3, 3)

	testCases := []struct {
		turn           int
		wantGPT        int
		wantCumulative int
	}{
		{turn: 1, wantGPT: 10, wantCumulative: 10},
		{turn: 2, wantGPT: 7, wantCumulative: 17},
		{turn: 3, wantGPT: 3, wantCumulative: 20},
	}
	for _, tc := range testCases {
		rec, ok := p.Record(turns.Turn(tc.turn))
		if !ok {
			t.Fatalf("Record(%d) missing", tc.turn)
		}
		if rec.GPT != tc.wantGPT {
			t.Errorf("Record(%d).GPT = %d want %d", tc.turn, rec.GPT, tc.wantGPT)
		}
		if rec.CumulativeGPT != tc.wantCumulative {
			t.Errorf("Record(%d).CumulativeGPT = %d want %d", tc.turn, rec.CumulativeGPT, tc.wantCumulative)
		}
	}
}

func TestPlayer_RecordGPTOutOfOrder(t *testing.T) {
	p := newPlayer(0, DefaultConfig())

	// turn 5 arrives before turn 4: no preceding record, cumulative starts over
	p.recordGPT(5, 8)
	if rec, _ := p.Record(5); rec.CumulativeGPT != 8 {
		t.Errorf("Record(5).CumulativeGPT = %d want 8", rec.CumulativeGPT)
	}

	// back-filling turn 4 does not retroactively recompute turn 5
	p.recordGPT(4, 100)
	if rec, _ := p.Record(5); rec.CumulativeGPT != 8 {
		t.Errorf("Record(5).CumulativeGPT = %d want 8 after back-fill", rec.CumulativeGPT)
	}
	// but a fresh write for turn 5 now sees turn 4
	p.recordGPT(5, 8)
	if rec, _ := p.Record(5); rec.CumulativeGPT != 108 {
		t.Errorf("Record(5).CumulativeGPT = %d want 108 after rewrite", rec.CumulativeGPT)
	}
}

func TestPlayer_ResetPreservesIdentity(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(2, cfg)
	p.setName("[2] INCA")
	p.setRawCiv("CIVILIZATION_INCA")
	p.sendGold(1, A(50))
	p.closeTurn(1, cfg.InterestRate)

	p.reset()

	if p.Name() != "[2] INCA" || p.RawCiv() != "CIVILIZATION_INCA" || p.Slot() != 2 {
		t.Errorf("identity changed across reset: slot=%d name=%q rawCiv=%q", p.Slot(), p.Name(), p.RawCiv())
	}
	if !p.Summed().Sent().IsZero() {
		t.Errorf("Summed().Sent() = %v want 0 after reset", p.Summed().Sent())
	}
	if _, ok := p.Record(1); ok {
		t.Error("Record(1) survived reset")
	}
}
