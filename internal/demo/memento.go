package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/patterns/internal/engine"
	"github.com/dshills/patterns/internal/engine/buffer"
	"github.com/dshills/patterns/internal/engine/history"
	"github.com/dshills/patterns/internal/event"
	"github.com/dshills/patterns/internal/logging"
)

// MementoOptions configures the buffer demonstration.
type MementoOptions struct {
	Identifier string
	Capacity   int
	Logger     *slog.Logger
}

// MementoStep records one action of the demonstration.
type MementoStep struct {
	Action     string `json:"action"`
	Content    string `json:"content"`
	HistoryLen int    `json:"historyLen"`
	Error      string `json:"error,omitempty"`
}

// MementoReport is the outcome of the buffer demonstration.
type MementoReport struct {
	Identifier string               `json:"identifier"`
	Capacity   int                  `json:"capacity"`
	Steps      []MementoStep        `json:"steps"`
	History    []RetainedCheckpoint `json:"history"`
}

// RetainedCheckpoint is a checkpoint still held once the script ends.
// Undo is the number of steps that restores it.
type RetainedCheckpoint struct {
	Undo int `json:"undo"`
	history.CheckpointInfo
}

// mementoScript is the sequence of writes, saves and undos performed.
var mementoScript = []struct {
	action string
	text   string
	steps  int
}{
	{action: "write", text: "Class notes for IS2 at UADER\n"},
	{action: "save"},
	{action: "write", text: "Additional material for the patterns class\n"},
	{action: "save"},
	{action: "write", text: "Additional material for the patterns class II\n"},
	{action: "undo", steps: 0},
	{action: "undo", steps: 0},
	{action: "undo", steps: 1},
	{action: "undo", steps: 2},
}

// Memento writes to a buffer, saves and undoes through a caretaker.
func Memento(w io.Writer, opts MementoOptions) (*MementoReport, error) {
	logger := logging.OrNop(opts.Logger)

	subject := event.NewSubject(opts.Identifier)
	if _, err := subject.AttachFunc(logBufferEvent(logger)); err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "Creating the caretaker that keeps previous versions")
	caretaker := engine.NewCaretaker(engine.WithLogger(logger))

	fmt.Fprintln(w, "Creating the buffer whose state is preserved")
	buf := buffer.NewBuffer(opts.Identifier,
		buffer.WithCapacity(opts.Capacity),
		buffer.WithLogger(logger),
		buffer.WithSubject(subject),
	)

	report := &MementoReport{
		Identifier: opts.Identifier,
		Capacity:   buf.Capacity(),
	}
	record := func(action string, err error) {
		step := MementoStep{
			Action:     action,
			Content:    buf.Content(),
			HistoryLen: buf.HistoryLen(),
		}
		if err != nil {
			step.Error = err.Error()
		}
		report.Steps = append(report.Steps, step)
	}

	for _, s := range mementoScript {
		switch s.action {
		case "write":
			fmt.Fprintln(w, "Writing to the buffer")
			buf.Append(s.text)
			fmt.Fprintf(w, "%s\n\n", buf.Content())
			record(s.action, nil)
		case "save":
			fmt.Fprintln(w, "Saving a checkpoint")
			caretaker.Save(buf)
			record(s.action, nil)
		case "undo":
			fmt.Fprintf(w, "Invoking undo (%d steps back)\n", s.steps)
			err := caretaker.Undo(buf, s.steps)
			if err != nil {
				fmt.Fprintf(w, "Undo rejected: %v\n", err)
			}
			fmt.Fprintln(w, "Current state:")
			fmt.Fprintf(w, "%s\n\n", buf.Content())
			record(fmt.Sprintf("undo %d", s.steps), err)
		}
	}

	it := buf.Checkpoints()
	report.History = make([]RetainedCheckpoint, 0, it.Remaining())
	for steps := 0; it.HasNext(); steps++ {
		cp, _ := it.Next()
		report.History = append(report.History, RetainedCheckpoint{Undo: steps, CheckpointInfo: cp.Info()})
	}
	return report, nil
}

func logBufferEvent(logger *slog.Logger) func(ctx context.Context, e event.Event) error {
	return func(ctx context.Context, e event.Event) error {
		change, _ := e.BufferChange()
		logger.DebugContext(ctx, "buffer event",
			"event", e.Type.String(),
			"identifier", change.Identifier,
			"length", change.Length,
			"history", change.HistoryLen)
		return nil
	}
}
