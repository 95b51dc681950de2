package syncstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

// Manager holds one loaded Store per authenticated owner. Stores are built
// and loaded on first access and evicted on logout.
type Manager struct {
	gateways    Gateways
	profileRepo identity.ProfileRepository
	logger      *zap.Logger

	mu     sync.Mutex
	stores map[uuid.UUID]*Store
}

func NewManager(gateways Gateways, profileRepo identity.ProfileRepository, logger *zap.Logger) *Manager {
	return &Manager{
		gateways:    gateways,
		profileRepo: profileRepo,
		logger:      logger,
		stores:      make(map[uuid.UUID]*Store),
	}
}

// Get returns the owner's store, building and loading it on first access.
// A store whose load failed is not cached, so the next request retries.
func (m *Manager) Get(ctx context.Context, user *identity.User) (*Store, error) {
	if user == nil {
		return nil, shared.ErrUnauthenticated
	}

	m.mu.Lock()
	if s, ok := m.stores[user.ID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s, err := New(user, m.gateways, m.profileRepo, m.logger)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have loaded concurrently; keep the first winner
	if existing, ok := m.stores[user.ID]; ok {
		return existing, nil
	}
	m.stores[user.ID] = s
	return s, nil
}

// Peek returns the owner's store only if it is already loaded
func (m *Manager) Peek(ownerID uuid.UUID) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[ownerID]
	return s, ok
}

// Drop evicts the owner's store, typically at logout
func (m *Manager) Drop(ownerID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stores[ownerID]; ok {
		delete(m.stores, ownerID)
		m.logger.Debug("Workspace store dropped", zap.String("owner_id", ownerID.String()))
	}
}

// Len reports how many stores are currently resident
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}
