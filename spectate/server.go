// Package spectate serves a read-only view of the running game over HTTP.
//
// GET /frame returns the latest frame as JSON, GET /status the metric registry, and GET /ws
// streams every changed frame over a websocket. The feed never blocks the game loop: slow
// clients miss frames.
package spectate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/render"
	"github.com/lixenwraith/snek/status"
)

const (
	clientBuffer    = 4
	writeTimeout    = time.Second
	shutdownTimeout = 2 * time.Second
)

// Server is both a frame sink and a service
type Server struct {
	addr   string
	reg    *status.Registry
	log    logrus.FieldLogger
	router *way.Router

	upgrader websocket.Upgrader

	mu       sync.Mutex
	latest   []byte
	clients  map[*client]struct{}
	httpSrv  *http.Server
	listener net.Listener

	spectators *atomic.Int64
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

// NewServer creates a feed for addr; an empty addr disables Start
func NewServer(addr string, reg *status.Registry, log logrus.FieldLogger) *Server {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Server{
		addr:       addr,
		reg:        reg,
		log:        log.WithField("service", "spectate"),
		clients:    make(map[*client]struct{}),
		spectators: reg.Ints.Get(status.KeySpectators),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/frame", s.handleFrame)
	s.router.HandleFunc("GET", "/status", s.handleStatus)
	s.router.HandleFunc("GET", "/ws", s.handleWS)
}

// Handler exposes the routes, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the bound address once started, else the configured one
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Name implements service.Service
func (s *Server) Name() string {
	return "spectate"
}

// Dependencies implements service.Service
func (s *Server) Dependencies() []string {
	return nil
}

// Init implements service.Service; a config.Config arg overrides the address
func (s *Server) Init(args ...any) error {
	if len(args) > 0 {
		if cfg, ok := args[0].(config.Config); ok {
			s.addr = cfg.Spectate
		}
	}
	return nil
}

// Start implements service.Service; listens only when an address is set
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.addr == "" || s.httpSrv != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "spectate listen %s", s.addr)
	}
	s.listener = ln
	s.httpSrv = &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}

	srv := s.httpSrv
	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Warn("spectator feed stopped")
		}
	})
	s.log.WithField("addr", ln.Addr().String()).Info("spectator feed listening")
	return nil
}

// Stop implements service.Service
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.httpSrv
	s.httpSrv = nil
	s.listener = nil
	for c := range s.clients {
		c.close()
	}
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Wrap(srv.Shutdown(ctx), "spectate shutdown")
}

// Publish implements engine.FrameSink; unchanged frames are not resent
func (s *Server) Publish(f render.Frame) {
	data, err := json.Marshal(NewSnapshot(f))
	if err != nil {
		s.log.WithError(err).Warn("frame encode failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(data, s.latest) {
		return
	}
	s.latest = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// slow client misses this frame
		}
	}
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data := s.latest
	s.mu.Unlock()

	if data == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.reg.Snapshot()); err != nil {
		s.log.WithError(err).Warn("status encode failed")
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Debug("websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBuffer), done: make(chan struct{})}
	s.mu.Lock()
	if s.latest != nil {
		c.send <- s.latest
	}
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.spectators.Add(1)
	s.log.WithField("remote", r.RemoteAddr).Info("spectator joined")

	core.Go(func() { s.readLoop(c) })
	s.writeLoop(c)

	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	s.spectators.Add(-1)
	conn.Close()
	s.log.WithField("remote", r.RemoteAddr).Info("spectator left")
}

// readLoop discards client messages and notices disconnects
func (s *Server) readLoop(c *client) {
	defer c.close()
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (s *Server) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeTimeout))
			return
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.log.WithError(err).Debug("spectator write failed")
				c.close()
				return
			}
		}
	}
}
