package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgerror"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/entity"
)

// InMemoryStore keeps sessions and their files in process memory.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionRecord
}

type sessionRecord struct {
	mu      sync.RWMutex
	session entity.Session
	files   map[string]entity.FileRecord
	order   []string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*sessionRecord),
	}
}

func (s *InMemoryStore) CreateSession(ctx context.Context, session entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return pkgerror.NewBusiness("session already exists", pkgerror.CodeConflict)
	}

	s.sessions[session.ID] = &sessionRecord{
		session: session,
		files:   make(map[string]entity.FileRecord),
	}

	return nil
}

func (s *InMemoryStore) GetSession(ctx context.Context, sessionID string) (entity.Session, error) {
	rec, err := s.get(sessionID)
	if err != nil {
		return entity.Session{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return rec.session, nil
}

func (s *InMemoryStore) TouchSession(ctx context.Context, sessionID string, at int64) error {
	rec, err := s.get(sessionID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if at > rec.session.LastSeenAt {
		rec.session.LastSeenAt = at
	}

	return nil
}

func (s *InMemoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return entity.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	return nil
}

// EvictIdle drops every session last seen before the given unix time and
// returns how many were removed.
func (s *InMemoryStore) EvictIdle(ctx context.Context, before int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, rec := range s.sessions {
		rec.mu.RLock()
		idle := rec.session.LastSeenAt < before
		rec.mu.RUnlock()

		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}

	return evicted, nil
}

func (s *InMemoryStore) SaveFile(ctx context.Context, file entity.FileRecord) error {
	rec, err := s.get(file.SessionID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if _, exists := rec.files[file.ID]; exists {
		return pkgerror.NewBusiness("file already exists", pkgerror.CodeConflict)
	}
	rec.files[file.ID] = file
	rec.order = append(rec.order, file.ID)

	return nil
}

func (s *InMemoryStore) GetFile(ctx context.Context, sessionID, fileID string) (entity.FileRecord, error) {
	rec, err := s.get(sessionID)
	if err != nil {
		return entity.FileRecord{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	file, ok := rec.files[fileID]
	if !ok {
		return entity.FileRecord{}, entity.ErrFileNotFound
	}

	return file, nil
}

// ListFiles returns the session's files in upload order.
func (s *InMemoryStore) ListFiles(ctx context.Context, sessionID string) ([]entity.FileRecord, error) {
	rec, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	files := make([]entity.FileRecord, 0, len(rec.order))
	for _, id := range rec.order {
		files = append(files, rec.files[id])
	}

	return files, nil
}

// UpdateFile applies fn to a copy of the record and stores the copy only when
// fn succeeds, so a failed update leaves the file as it was.
func (s *InMemoryStore) UpdateFile(ctx context.Context, sessionID, fileID string, fn func(file *entity.FileRecord) error) (entity.FileRecord, error) {
	rec, err := s.get(sessionID)
	if err != nil {
		return entity.FileRecord{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	file, ok := rec.files[fileID]
	if !ok {
		return entity.FileRecord{}, entity.ErrFileNotFound
	}

	if err := fn(&file); err != nil {
		return entity.FileRecord{}, err
	}
	file.ID = fileID
	file.SessionID = sessionID
	rec.files[fileID] = file

	return file, nil
}

func (s *InMemoryStore) get(sessionID string) (*sessionRecord, error) {
	s.mu.RLock()
	rec, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	return rec, nil
}
