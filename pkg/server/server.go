package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deitnotify/nutrisearch/internal/logger"
	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/dataset"
	"github.com/deitnotify/nutrisearch/pkg/lookup"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	codeBadRequest = 400
	codeNotFound   = 404
)

// Server answers msgpack requests against one engine.
type Server struct {
	engine       *lookup.Engine
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing
// responses to w.
func NewServer(engine *lookup.Engine, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		log:    logger.New("server"),
	}
}

// Start serves requests until the input is closed. It returns nil on a
// clean EOF and an error when the stream can no longer be read or written.
func (s *Server) Start() error {
	s.log.Debug("Starting server", "rows", s.engine.Table().Len())

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Warnf("Invalid request: %v", err)
			if err := s.sendError("", "invalid request", codeBadRequest); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			s.log.Errorf("Writing response: %v", err)
			return err
		}
	}
}

func (s *Server) handleRequest(req Request) error {
	s.log.Debug("Request", "id", req.ID, "action", req.Action, "q", req.Query)

	switch req.Action {
	case ActionSearch:
		return s.handleSearch(req)
	case ActionProfile:
		return s.handleProfile(req)
	case ActionComplete:
		return s.handleComplete(req)
	case ActionInfo:
		table := s.engine.Table()
		return s.send(InfoResponse{ID: req.ID, Rows: table.Len(), Columns: table.Columns()})
	}
	return s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), codeBadRequest)
}

func (s *Server) handleSearch(req Request) error {
	if utils.IsBlank(req.Query) {
		return s.sendError(req.ID, "missing query", codeBadRequest)
	}

	start := time.Now()
	matches := s.engine.Search(req.Query)

	sel, err := s.engine.Disambiguate(matches, req.Query)
	if err != nil {
		return s.sendError(req.ID, err.Error(), codeNotFound)
	}

	listed := sel.Menu
	if sel.Exact {
		listed = []dataset.Record{sel.Record}
	}
	if req.Limit > 0 && len(listed) > req.Limit {
		listed = listed[:req.Limit]
	}

	resp := SearchResponse{
		ID:      req.ID,
		Matches: make([]Match, len(listed)),
		Count:   len(listed),
		Total:   sel.Total,
		Exact:   sel.Exact,
	}
	for i, rec := range listed {
		resp.Matches[i] = Match{Row: rec.ID(), Food: rec.Food()}
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	return s.send(resp)
}

func (s *Server) handleProfile(req Request) error {
	var rec dataset.Record
	switch {
	case req.Row != nil:
		r, ok := s.engine.Table().Row(*req.Row)
		if !ok {
			return s.sendError(req.ID, fmt.Sprintf("row %d out of range", *req.Row), codeNotFound)
		}
		rec = r
	case !utils.IsBlank(req.Query):
		found := s.engine.Table().Lookup(req.Query)
		if len(found) == 0 {
			return s.sendError(req.ID, (&lookup.NoMatchError{Query: req.Query}).Error(), codeNotFound)
		}
		rec = found[0]
	default:
		return s.sendError(req.ID, "missing row or query", codeBadRequest)
	}

	p := s.engine.Profile(rec)
	resp := ProfileResponse{
		ID:     req.ID,
		Row:    rec.ID(),
		Food:   p.Food,
		Majors: toEntries(p.Majors),
		Others: toEntries(p.Others),
	}
	if p.DetailErr != nil {
		resp.Detail = p.DetailErr.Error()
	}
	return s.send(resp)
}

func (s *Server) handleComplete(req Request) error {
	if utils.IsBlank(req.Query) {
		return s.sendError(req.ID, "missing query", codeBadRequest)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.engine.Options().MenuLimit
	}
	names := s.engine.Table().Complete(req.Query, limit)
	return s.send(CompleteResponse{ID: req.ID, Names: names, Count: len(names)})
}

func toEntries(nutrients []lookup.Nutrient) []NutrientEntry {
	entries := make([]NutrientEntry, len(nutrients))
	for i, n := range nutrients {
		entries[i] = NutrientEntry{
			Name:    n.Name,
			Value:   n.Value,
			Numeric: n.Numeric,
			Missing: n.Missing,
			Raw:     n.Raw,
			Unit:    n.Unit,
		}
	}
	return entries
}

func (s *Server) send(response any) error {
	return s.enc.Encode(response)
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
