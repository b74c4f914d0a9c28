package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/dshills/patterns/internal/event"
	"github.com/dshills/patterns/internal/logging"
)

// Watcher is an observer waiting for one ID.
type Watcher struct {
	Name string
	ID   string
}

// ObserverOptions configures the observer demonstration.
type ObserverOptions struct {
	Rounds   int
	Seed     int64
	Watchers []Watcher
	Logger   *slog.Logger
}

// ObserverRound records one emitted ID and the watchers it matched.
type ObserverRound struct {
	ID      string   `json:"id"`
	Matches []string `json:"matches"`
}

// ObserverReport is the outcome of the observer demonstration.
type ObserverReport struct {
	Seed   int64           `json:"seed"`
	Rounds []ObserverRound `json:"rounds"`
}

// IDEmitter is a subject that emits random four-letter IDs.
type IDEmitter struct {
	subject *event.Subject

	mu  sync.Mutex
	rng *rand.Rand
}

// NewIDEmitter creates an emitter whose IDs are determined by seed.
func NewIDEmitter(seed int64) *IDEmitter {
	return &IDEmitter{
		subject: event.NewSubject("IDEmitter"),
		rng:     rand.New(rand.NewPCG(uint64(seed), uint64(seed))),
	}
}

// Subject returns the subject observers attach to.
func (e *IDEmitter) Subject() *event.Subject {
	return e.subject
}

// Emit generates a new ID and delivers it to every observer in attach order.
func (e *IDEmitter) Emit(ctx context.Context) (string, error) {
	e.mu.Lock()
	id := e.generateID()
	e.mu.Unlock()
	return id, e.subject.Notify(ctx, event.New(event.TypeIDEmitted, id))
}

func (e *IDEmitter) generateID() string {
	var b strings.Builder
	for range 4 {
		b.WriteByte(byte('A' + e.rng.IntN(26)))
	}
	return b.String()
}

// Observer emits random IDs to a set of watchers, each reporting when the
// emitted ID matches its own.
func Observer(ctx context.Context, w io.Writer, opts ObserverOptions) (*ObserverReport, error) {
	logger := logging.OrNop(opts.Logger)

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Int64()
	}
	emitter := NewIDEmitter(seed)
	report := &ObserverReport{Seed: seed}

	// Attached before the watchers so it reports each ID ahead of them
	_, err := emitter.Subject().AttachFunc(func(ctx context.Context, e event.Event) error {
		id, _ := e.Payload.(string)
		fmt.Fprintf(w, "Subject: ID emitted: %s\n", id)
		fmt.Fprintln(w, "Subject: notifying observers...")
		return nil
	})
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, watcher := range opts.Watchers {
		fmt.Fprintln(w, "Subject: attached an observer.")
		_, err := emitter.Subject().AttachFunc(func(ctx context.Context, e event.Event) error {
			id, _ := e.Payload.(string)
			if id != watcher.ID {
				return nil
			}
			fmt.Fprintf(w, "%s: my ID (%s) matches the emitted ID (%s)\n", watcher.Name, watcher.ID, id)
			matches = append(matches, watcher.Name)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for range opts.Rounds {
		matches = []string{}
		fmt.Fprintln(w, "\nSubject: emitting an ID.")
		id, err := emitter.Emit(ctx)
		if err != nil {
			return report, err
		}
		logger.Debug("id emitted", "id", id, "matches", len(matches))
		report.Rounds = append(report.Rounds, ObserverRound{ID: id, Matches: matches})
	}

	return report, nil
}
