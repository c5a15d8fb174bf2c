// Package cli runs the interactive search session on top of a lookup.Engine.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deitnotify/nutrisearch/internal/logger"
	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/dataset"
	"github.com/deitnotify/nutrisearch/pkg/lookup"
)

// quitTokens end the session, compared case-insensitively.
var quitTokens = []string{"q", "exit", "quit"}

// InputHandler reads queries and menu answers from a reader and writes
// results to a writer. One query is handled at a time.
type InputHandler struct {
	engine     *lookup.Engine
	reader     *bufio.Reader
	out        io.Writer
	status     *log.Logger
	term       *terminal
	showBanner bool
}

// NewInputHandler creates a session over engine reading from in and
// writing to out.
func NewInputHandler(engine *lookup.Engine, in io.Reader, out io.Writer, showBanner bool) *InputHandler {
	return &InputHandler{
		engine:     engine,
		reader:     bufio.NewReader(in),
		out:        out,
		status:     logger.NewPlain(out),
		term:       newTerminal(out),
		showBanner: showBanner,
	}
}

// Start runs the session loop until a quit token or end of input, both of
// which print a farewell and return nil. Only read failures are returned.
func (h *InputHandler) Start() error {
	h.term.loaded(h.engine.Table().Len())
	if h.showBanner {
		h.term.banner()
	}

	for {
		h.term.prompt("\n>> Enter food name: ")
		query, err := h.readLine()
		if err != nil {
			return h.finish(err)
		}
		if utils.IsOneOf(query, quitTokens...) {
			return h.finish(nil)
		}
		if query == "" {
			continue
		}
		if err := h.handleQuery(query); err != nil {
			return h.finish(err)
		}
	}
}

// finish prints the farewell; end of input counts as a normal exit.
func (h *InputHandler) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	h.term.farewell()
	return nil
}

// readLine returns the next trimmed line. A final line without a newline
// is returned before io.EOF.
func (h *InputHandler) readLine() (string, error) {
	line, err := h.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// handleQuery searches for query and walks the result through exact
// match, menu selection or the no-match message. Recoverable problems are
// reported here; the returned error is only ever a read failure.
func (h *InputHandler) handleQuery(query string) error {
	start := time.Now()
	matches := h.engine.Search(query)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), query)

	sel, err := h.engine.Disambiguate(matches, query)
	if err != nil {
		var noMatch *lookup.NoMatchError
		if errors.As(err, &noMatch) {
			h.status.Warnf("No results found for '%s'. Try a broader term.", noMatch.Query)
			return nil
		}
		h.status.Errorf("Error: %v", err)
		return nil
	}

	fmt.Fprintf(h.out, "\nFound %d matching item(s).\n", sel.Total)
	if sel.Exact {
		h.term.notice("Exact match found!")
		h.show(sel.Record)
		return nil
	}

	h.term.menu(sel)
	h.term.prompt("\nSelect a number: ")
	answer, err := h.readLine()
	if err != nil {
		return err
	}

	rec, ok, err := sel.Choose(answer)
	switch {
	case errors.Is(err, lookup.ErrOutOfRange):
		h.status.Error("Invalid selection.")
	case errors.Is(err, lookup.ErrNotANumber):
		h.status.Error("Invalid input.")
	case err != nil:
		h.status.Errorf("Error: %v", err)
	case !ok:
		fmt.Fprintln(h.out, "Search cancelled.")
	default:
		h.show(rec)
	}
	return nil
}

func (h *InputHandler) show(rec dataset.Record) {
	fmt.Fprintln(h.out)
	fmt.Fprint(h.out, h.engine.Display(rec))
}
