package civlog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/civtrack/goldwatch"
	"github.com/civtrack/goldwatch/tail"
	"github.com/civtrack/goldwatch/turns"
)

// The three log files under the game's Logs directory.
const (
	DealsLog = "DiplomacyDeals.log"
	CoreLog  = "GameCore.log"
	StatsLog = "Player_Stats.csv"
)

// statsDelay is how long Run waits before attaching to the stats CSV. Gpt
// rows are matched by civilization key, which depends on the core log's
// identity lines being parsed first; a fresh start chews through the
// existing logs well within this window.
const statsDelay = 1500 * time.Millisecond

// Feed routes log lines into a Ledger. It is the single dispatch loop the
// Ledger expects: all three logs funnel through one goroutine, in the order
// the files produced them.
type Feed struct {
	ledger *goldwatch.Ledger

	// latest turn announced in the deals log; deal lines carry no turn of
	// their own.
	turn turns.Turn
}

func NewFeed(ledger *goldwatch.Ledger) *Feed {
	return &Feed{ledger: ledger, turn: 1}
}

// HandleDealLine processes one line of the deals log: turn announcements,
// gold deals, and luxury exchanges.
func (f *Feed) HandleDealLine(line string) {
	if turn, ok := ParseTurnLine(line); ok {
		if turn < f.turn {
			log.Printf("turn went back from %v to %v, a new game started", f.turn, turn)
		}
		f.turn = turn
	}
	if deal, ok := ParseDealLine(line); ok {
		deal.Turn = f.turn
		f.ledger.SubmitDeal(deal)
	}
	if lux, ok := ParseLuxLine(line); ok {
		f.ledger.SubmitLuxDeal(lux)
	}
}

// HandleCoreLine processes one line of the game core log.
func (f *Feed) HandleCoreLine(line string) {
	if info, ok := ParseSlotLine(line); ok {
		f.ledger.SetPlayerName(info)
	}
}

// HandleStatsLine processes one row of the stats CSV.
func (f *Feed) HandleStatsLine(line string) {
	if stats, ok := ParseStatsLine(line); ok {
		f.ledger.RecordGPT(stats)
	}
}

// Run tails the three logs under dir and dispatches their lines until ctx
// is done. It returns ctx.Err() on cancellation.
func (f *Feed) Run(ctx context.Context, dir string) error {
	deals, err := tail.Follow(ctx, filepath.Join(dir, DealsLog))
	if err != nil {
		return fmt.Errorf("could not follow %s: %w", DealsLog, err)
	}
	core, err := tail.Follow(ctx, filepath.Join(dir, CoreLog))
	if err != nil {
		return fmt.Errorf("could not follow %s: %w", CoreLog, err)
	}

	// the stats tail starts nil and is attached once statsDelay elapses
	var statsLines <-chan string
	statsTimer := time.After(statsDelay)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-statsTimer:
			stats, err := tail.Follow(ctx, filepath.Join(dir, StatsLog))
			if err != nil {
				log.Printf("could not follow %s: %v", StatsLog, err)
				continue
			}
			statsLines = stats.Lines()
		case line, ok := <-deals.Lines():
			if !ok {
				return nil
			}
			f.HandleDealLine(line)
		case line, ok := <-core.Lines():
			if !ok {
				return nil
			}
			f.HandleCoreLine(line)
		case line, ok := <-statsLines:
			if !ok {
				statsLines = nil
				continue
			}
			f.HandleStatsLine(line)
		}
	}
}

// Replay reads the three logs under dir once, in dependency order: identity
// lines first so the stats rows can resolve their civilization keys, deals
// in between to drive the turn clock. Missing files are skipped; a finished
// game does not always have all three.
func (f *Feed) Replay(dir string) error {
	files := []struct {
		name   string
		handle func(string)
	}{
		{CoreLog, f.HandleCoreLine},
		{DealsLog, f.HandleDealLine},
		{StatsLog, f.HandleStatsLine},
	}
	for _, file := range files {
		if err := scanFile(filepath.Join(dir, file.name), file.handle); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("skipping %s: not found", file.name)
				continue
			}
			return err
		}
	}
	return nil
}

func scanFile(path string, handle func(string)) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		handle(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error scanning %s: %w", path, err)
	}
	return nil
}
