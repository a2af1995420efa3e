package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bastiangx/wordindex/pkg/config"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server answers msgpack requests against a built index.
// Requests are handled one at a time; only the limits may change concurrently.
type Server struct {
	index        suggest.Index
	in           io.Reader
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	requestCount int

	mu          sync.RWMutex
	maxList     int
	maxQueryLen int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(idx suggest.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	s := &Server{
		index: idx,
		in:    r,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
	}
	s.ApplyConfig(cfg)
	return s
}

// ApplyConfig updates the request limits.
func (s *Server) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxList = cfg.Server.MaxList
	s.maxQueryLen = cfg.Query.MaxLen
}

func (s *Server) limits() (maxList, maxQueryLen int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxList, s.maxQueryLen
}

// Start writes the ready marker and serves requests until the input ends or
// ctx is cancelled. Both are a normal stop and return nil. On cancellation the
// input is closed when it is an io.Closer, which releases the pending read;
// other readers keep it blocked until they reach EOF.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting Server.")
	if err := s.send(ReadyResponse{Status: "ready"}); err != nil {
		return fmt.Errorf("failed to write ready marker: %w", err)
	}

	msgs := make(chan msgpack.RawMessage)
	readErr := make(chan error, 1)
	go func() {
		defer close(msgs)
		for {
			raw, err := s.dec.DecodeRaw()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
			select {
			case msgs <- raw:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debugf("Server stopping after %d requests", s.requestCount)
			if c, ok := s.in.(io.Closer); ok {
				if err := c.Close(); err != nil {
					log.Warnf("Closing server input: %v", err)
				}
			}
			return nil
		case raw, ok := <-msgs:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("failed to read request: %w", err)
				default:
					log.Debugf("Input closed after %d requests", s.requestCount)
					return nil
				}
			}
			s.handleMessage(raw)
		}
	}
}

// Served returns the number of requests handled.
func (s *Server) Served() int {
	return s.requestCount
}

func (s *Server) handleMessage(raw msgpack.RawMessage) {
	s.requestCount++

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "Invalid msgpack request", CodeBadRequest)
		return
	}

	switch req.Action {
	case "", "query":
		s.handleQuery(req)
	case "list":
		s.handleList(req)
	case "stats":
		s.handleStats(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleQuery(req Request) {
	_, maxQueryLen := s.limits()
	if len(req.Query) > maxQueryLen {
		log.Debug("Query is too long in request", "id", req.ID, "len", len(req.Query))
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d bytes", maxQueryLen), CodeQueryTooLong)
		return
	}

	start := time.Now()
	res := suggest.Query(s.index, req.Query)
	elapsed := time.Since(start)

	s.send(QueryResponse{
		ID:         req.ID,
		Query:      req.Query,
		Count:      res.Count,
		Exact:      res.Exact(),
		Offset:     res.Position.Offset,
		LineLength: res.Position.LineLength,
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleList(req Request) {
	maxList, maxQueryLen := s.limits()
	if len(req.Query) > maxQueryLen {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d bytes", maxQueryLen), CodeQueryTooLong)
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > maxList {
		limit = maxList
	}

	start := time.Now()
	entries := s.index.Entries(req.Query, limit)
	elapsed := time.Since(start)

	out := make([]ListEntry, len(entries))
	for i, e := range entries {
		out[i] = ListEntry{Text: e.Text, Offset: e.Offset, LineLength: e.LineLength}
	}
	s.send(ListResponse{
		ID:        req.ID,
		Query:     req.Query,
		Entries:   out,
		Count:     len(out),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleStats(req Request) {
	stats := suggest.Stats(s.index)
	s.send(StatsResponse{
		ID:      req.ID,
		Status:  "ok",
		Entries: stats["entries"],
		Nodes:   stats["nodes"],
		Backend: suggest.BackendName(s.index),
		Served:  s.requestCount,
	})
}

// send encodes a response; failures are logged since the peer is gone anyway.
func (s *Server) send(v any) error {
	if err := s.enc.Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
		return err
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
