package storage

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/core"
)

// DefaultMaxEntries is the table length kept when none is configured.
const DefaultMaxEntries = 5

// DefaultScores returns the table a fresh install starts with.
func DefaultScores(defaultInitials string) []core.ScoreRecord {
	return []core.ScoreRecord{
		{Score: 50, Initials: "ACE"},
		{Score: 40, Initials: "FLY"},
		{Score: 25, Initials: "SKY"},
		{Score: 10, Initials: defaultInitials},
		{Score: 1, Initials: "TRY"},
	}
}

// Board is the high-score table the game reports to. It reads through to a
// Store when one is attached. Any database failure is logged and the board
// continues on its in-memory copy; errors never reach the caller.
type Board struct {
	mu       sync.Mutex
	store    *Store
	mem      []core.ScoreRecord
	max      int
	initials string
	logger   *log.Logger
}

// NewBoard creates a board. A nil store keeps scores in memory only.
func NewBoard(store *Store, maxEntries int, defaultInitials string, logger *log.Logger) *Board {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		store:    store,
		max:      maxEntries,
		initials: defaultInitials,
		logger:   logger,
	}
}

// HighScores returns the table, best first. An empty table is seeded with
// the defaults on first read.
func (b *Board) HighScores() []core.ScoreRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.ScoreRecord(nil), b.load()...)
}

// TopScore returns the best entry, or a zero record for an empty table.
func (b *Board) TopScore() core.ScoreRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	scores := b.load()
	if len(scores) == 0 {
		return core.ScoreRecord{}
	}
	return scores[0]
}

// IsNewHighScore reports whether score would enter the table: the table is
// not full yet, or score beats the lowest entry.
func (b *Board) IsNewHighScore(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	scores := b.load()
	return len(scores) < b.max || score > scores[len(scores)-1].Score
}

// SaveHighScore inserts an entry and trims the table. Initials are cut to
// five runes; empty initials become the default. The result reports whether
// the entry made the table; a database failure only costs persistence and is
// logged by the board.
func (b *Board) SaveHighScore(score int, initials string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := core.ScoreRecord{Score: score, Initials: b.clean(initials)}
	b.load()

	kept := len(b.mem) < b.max || score > b.mem[len(b.mem)-1].Score
	b.mem = append(b.mem, rec)
	sort.SliceStable(b.mem, func(i, j int) bool { return b.mem[i].Score > b.mem[j].Score })
	if len(b.mem) > b.max {
		b.mem = b.mem[:b.max]
	}

	if !kept || b.store == nil {
		return kept
	}
	if _, err := b.store.Insert(rec); err != nil {
		b.fail("save high score", err)
		return true
	}
	if err := b.store.Prune(b.max); err != nil {
		b.fail("prune high scores", err)
		return true
	}
	b.logger.Info("high score saved", "score", score, "initials", rec.Initials)
	return true
}

// load refreshes the in-memory copy from the store. Caller holds mu.
func (b *Board) load() []core.ScoreRecord {
	if b.store == nil {
		if b.mem == nil {
			b.mem = DefaultScores(b.initials)
		}
		return b.mem
	}

	entries, err := b.store.Top(b.max)
	if err != nil {
		b.fail("read high scores", err)
		return b.load()
	}
	if len(entries) == 0 {
		defaults := DefaultScores(b.initials)
		if err := b.store.Seed(defaults); err != nil {
			b.fail("seed high scores", err)
			return b.load()
		}
		b.mem = defaults
		return b.mem
	}

	b.mem = b.mem[:0]
	for _, e := range entries {
		b.mem = append(b.mem, e.Record())
	}
	return b.mem
}

// fail logs err and detaches the store.
func (b *Board) fail(op string, err error) {
	b.logger.Warn("high-score storage unavailable, using memory", "op", op, "err", err)
	b.store = nil
}

func (b *Board) clean(initials string) string {
	initials = strings.TrimSpace(initials)
	if r := []rune(initials); len(r) > 5 {
		initials = string(r[:5])
	}
	if initials == "" {
		return b.initials
	}
	return initials
}
