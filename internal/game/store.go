package game

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Store owns the live GameState. Dispatch is the only writer; readers get
// clones.
type Store struct {
	mu      sync.Mutex
	l       logrus.FieldLogger
	factory *Factory
	state   GameState
}

func NewStore(l logrus.FieldLogger, factory *Factory, initial GameState) *Store {
	return &Store{
		l:       l,
		factory: factory,
		state:   initial.Clone(),
	}
}

func (s *Store) Dispatch(action Action) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, res := Apply(s.factory, s.state, action)
	fields := logrus.Fields{
		"action": action.Name(),
		"day":    next.Day,
		"money":  next.Money,
		"energy": next.Energy,
	}
	if res.Err != nil {
		s.l.WithFields(fields).WithError(res.Err).Info("Action rejected.")
		return res
	}
	s.state = next
	s.l.WithFields(fields).Debugf("Action applied: %s", res.Message)
	return res
}

func (s *Store) Snapshot() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
