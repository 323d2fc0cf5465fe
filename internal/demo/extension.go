// Package demo holds the extensions bootstrapped by the command line, and the
// syntaxes starting and stopping them.
package demo

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/configuration"
)

// Extension is implemented by all the demo extensions.
type Extension interface {
	Start() error
	Stop() error
}

// ErrUnknownExtension is returned when creating an extension with an unknown
// name.
var ErrUnknownExtension = errors.New("unknown extension")

// Names of the extensions NewExtension can create.
const (
	StoreName  = "store"
	CacheName  = "cache"
	ServerName = "server"
)

// NewExtension creates the extension called name.
func NewExtension(name string, logger *zap.Logger) (Extension, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch name {
	case StoreName:
		return &Store{Path: "bootstrapper.db", Timeout: time.Second, logger: logger}, nil
	case CacheName:
		return &Cache{Size: 16, logger: logger}, nil
	case ServerName:
		return &Server{Address: "localhost:8080", values: map[string]string{}, logger: logger}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownExtension, "%q", name)
	}
}

type state struct {
	mu      sync.Mutex
	started bool
	closed  bool
}

func (s *state) start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("extension is closed")
	}

	s.started = true

	return nil
}

func (s *state) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
}

// Started reports whether the extension is started.
func (s *state) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}

// Closed reports whether the extension is closed.
func (s *state) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Store has its fields assigned from the "Store" section and is closed when
// shut down.
type Store struct {
	state

	Path    string        `config:"path"`
	Timeout time.Duration `config:"timeout"`
	logger  *zap.Logger
}

func (s *Store) Start() error {
	s.logger.Info("opening store", zap.String("path", s.Path), zap.Duration("timeout", s.Timeout))

	return s.start()
}

func (s *Store) Stop() error {
	s.logger.Info("flushing store", zap.String("path", s.Path))
	s.stop()

	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.logger.Info("store closed", zap.String("path", s.Path))

	return nil
}

// Cache receives the whole "Cache" section.
type Cache struct {
	state

	Size    int           `config:"size"`
	TTL     time.Duration `config:"ttl"`
	section *configuration.Section
	logger  *zap.Logger
}

func (c *Cache) Apply(section *configuration.Section) error {
	c.section = section

	return configuration.AssignProperties(c, section.Values, nil, nil)
}

// Section returns the section given to the cache.
func (c *Cache) Section() *configuration.Section {
	return c.section
}

func (c *Cache) Start() error {
	if c.Size <= 0 {
		return errors.Errorf("invalid cache size %d", c.Size)
	}

	c.logger.Info("warming cache", zap.Int("size", c.Size), zap.Duration("ttl", c.TTL))

	return c.start()
}

func (c *Cache) Stop() error {
	c.logger.Info("dropping cache")
	c.stop()

	return nil
}

// Server reads the "http" section and keeps its raw values.
type Server struct {
	state

	Address string `config:"address"`
	values  map[string]string
	logger  *zap.Logger
}

func (s *Server) SectionName() string {
	return "http"
}

func (s *Server) Configuration() map[string]string {
	return s.values
}

func (s *Server) Start() error {
	s.logger.Info("listening", zap.String("address", s.Address), zap.Any("configuration", s.values))

	return s.start()
}

func (s *Server) Stop() error {
	s.logger.Info("stopped listening", zap.String("address", s.Address))
	s.stop()

	return nil
}

var (
	_ configuration.SectionConsumer       = (*Cache)(nil)
	_ configuration.SectionNamer          = (*Server)(nil)
	_ configuration.ConfigurationConsumer = (*Server)(nil)
)
