package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/google/uuid"
)

type memUsers struct {
	sync.Mutex
	byID map[uuid.UUID]*domain.User
	err  error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]*domain.User{}}
}

func (m *memUsers) Save(u *domain.User) error {
	m.Lock()
	defer m.Unlock()
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) ByID(id uuid.UUID) (*domain.User, error) {
	m.Lock()
	defer m.Unlock()
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) ByUsername(username string) (*domain.User, error) {
	m.Lock()
	defer m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memRecords struct {
	sync.Mutex
	records []domain.Record
	err     error
}

func (m *memRecords) Save(_ context.Context, r *domain.Record) error {
	m.Lock()
	defer m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *r)
	return nil
}

func (m *memRecords) Top(_ context.Context, rows, cols int, limit int64) ([]domain.Record, error) {
	m.Lock()
	defer m.Unlock()
	var out []domain.Record
	for _, r := range m.records {
		if r.Rows == rows && r.Cols == cols {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Less(out[b]) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memRuns struct {
	mu      sync.Mutex
	states  map[uuid.UUID]game.RunState
	locks   map[uuid.UUID]int
	lockErr error
}

func newMemRuns() *memRuns {
	return &memRuns{states: map[uuid.UUID]game.RunState{}, locks: map[uuid.UUID]int{}}
}

func (m *memRuns) Save(_ context.Context, s game.RunState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[s.ID] = s
	return nil
}

func (m *memRuns) ByID(_ context.Context, id uuid.UUID) (game.RunState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[id]
	if !ok {
		return game.RunState{}, game.ErrRunNotFound
	}
	return s, nil
}

func (m *memRuns) Lock(_ context.Context, id uuid.UUID) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lockErr != nil {
		return nil, m.lockErr
	}
	m.locks[id]++
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.locks[id]--
	}, nil
}

type memLogger struct {
	sync.Mutex
	lines []string
}

func (l *memLogger) log(level, msg string) {
	l.Lock()
	defer l.Unlock()
	l.lines = append(l.lines, level+" "+msg)
}

func (l *memLogger) Info(msg string)    { l.log("INFO", msg) }
func (l *memLogger) Warning(msg string) { l.log("WARNING", msg) }
func (l *memLogger) Error(msg string)   { l.log("ERROR", msg) }

type fakeTokenizer struct {
	claims map[string]interface{}
	err    error
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.claims = claims
	return "signed-token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
