package session

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"osintgraph/application/interaction"
	"osintgraph/domain/config"
	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/core/valueobjects"
	pkgerrors "osintgraph/pkg/errors"
)

// Options configures a Registry
type Options struct {
	MaxSessions int
	Domain      *config.DomainConfig
}

// Registry holds every open canvas
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	enricher interaction.Enricher
	logger   *zap.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(opts Options, enricher interaction.Enricher, logger *zap.Logger) *Registry {
	if opts.Domain == nil {
		opts.Domain = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts,
		enricher: enricher,
		logger:   logger,
	}
}

// Open starts a new canvas for the given case. Each canvas gets its own graph
// and id generator.
func (r *Registry) Open(caseName string) (*Session, error) {
	caseName = strings.TrimSpace(caseName)
	if caseName == "" {
		return nil, pkgerrors.NewValidationError("case name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.MaxSessions > 0 && len(r.sessions) >= r.opts.MaxSessions {
		return nil, pkgerrors.NewLimitExceededError("sessions", r.opts.MaxSessions)
	}

	graph := aggregates.NewGraph(r.opts.Domain, valueobjects.NewIDGenerator())
	s := &Session{
		id:         uuid.New().String(),
		caseName:   caseName,
		createdAt:  time.Now(),
		controller: interaction.NewController(graph, r.enricher, r.logger.With(zap.String("case", caseName))),
	}
	r.sessions[s.id] = s

	r.logger.Info("canvas opened",
		zap.String("sessionID", s.id),
		zap.String("case", caseName),
	)
	return s, nil
}

// Get returns an open session
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("session " + id)
	}
	return s, nil
}

// Close discards a canvas and its graph. Closing an unknown session returns false.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)

	r.logger.Info("canvas closed", zap.String("sessionID", id))
	return true
}

// List returns the open sessions, oldest first
func (r *Registry) List() []*Session {
	r.mu.RLock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].createdAt.Equal(out[j].createdAt) {
			return out[i].id < out[j].id
		}
		return out[i].createdAt.Before(out[j].createdAt)
	})
	return out
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
