package store

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Memory is an in-memory Store with the same semantics as the Firestore
// implementation. It backs every package test and doubles as a local dev
// backend.
type Memory struct {
	mu       sync.RWMutex
	data     map[Collection]map[string]map[string]interface{}
	watchers map[Collection][]chan struct{}
}

func NewMemory() *Memory {
	return &Memory{
		data:     make(map[Collection]map[string]map[string]interface{}),
		watchers: make(map[Collection][]chan struct{}),
	}
}

func (s *Memory) Get(ctx context.Context, col Collection, id string) (Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[col][id]
	if !ok {
		return Doc{}, ErrNotFound
	}
	return Doc{ID: id, Data: copyFields(data)}, nil
}

func (s *Memory) List(ctx context.Context, col Collection) ([]Doc, error) {
	return s.Find(ctx, col)
}

func (s *Memory) Find(ctx context.Context, col Collection, filters ...Filter) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Doc
	for id, data := range s.data[col] {
		if matchesAll(data, filters) {
			docs = append(docs, Doc{ID: id, Data: copyFields(data)})
		}
	}
	return docs, nil
}

func (s *Memory) Set(ctx context.Context, col Collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	s.setLocked(col, id, copyFields(data))
	s.mu.Unlock()
	s.notify(col)
	return nil
}

func (s *Memory) Update(ctx context.Context, col Collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	doc, ok := s.data[col][id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = copyValue(v)
	}
	s.mu.Unlock()
	s.notify(col)
	return nil
}

func (s *Memory) Delete(ctx context.Context, col Collection, id string) error {
	s.mu.Lock()
	delete(s.data[col], id)
	s.mu.Unlock()
	s.notify(col)
	return nil
}

func (s *Memory) Count(ctx context.Context, col Collection, filters ...Filter) (int, error) {
	docs, err := s.Find(ctx, col, filters...)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// RunTransaction buffers every write and applies them under one lock hold
// only if fn returns nil. Reads see the committed state at call time.
func (s *Memory) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	tx := &memoryTx{store: s}
	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	touched := make(map[Collection]bool)
	for _, w := range tx.writes {
		touched[w.col] = true
		switch w.kind {
		case writeSet:
			s.setLocked(w.col, w.id, w.data)
		case writeUpdate:
			doc, ok := s.data[w.col][w.id]
			if !ok {
				doc = make(map[string]interface{})
				s.setLocked(w.col, w.id, doc)
			}
			for k, v := range w.data {
				doc[k] = v
			}
		case writeDelete:
			delete(s.data[w.col], w.id)
		}
	}
	s.mu.Unlock()

	for col := range touched {
		s.notify(col)
	}
	return nil
}

func (s *Memory) Watch(ctx context.Context, col Collection) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.watchers[col] = append(s.watchers[col], ch)
	s.mu.Unlock()

	unregister := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		ws := s.watchers[col]
		for i, w := range ws {
			if w == ch {
				s.watchers[col] = append(ws[:i], ws[i+1:]...)
				close(ch)
				break
			}
		}
	}
	return ch, unregister
}

func (s *Memory) setLocked(col Collection, id string, data map[string]interface{}) {
	if s.data[col] == nil {
		s.data[col] = make(map[string]map[string]interface{})
	}
	s.data[col][id] = data
}

func (s *Memory) notify(col Collection) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.watchers[col] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

type writeKind int

const (
	writeSet writeKind = iota
	writeUpdate
	writeDelete
)

type bufferedWrite struct {
	kind writeKind
	col  Collection
	id   string
	data map[string]interface{}
}

type memoryTx struct {
	store  *Memory
	writes []bufferedWrite
}

func (t *memoryTx) Get(col Collection, id string) (Doc, error) {
	return t.store.Get(context.Background(), col, id)
}

func (t *memoryTx) Set(col Collection, id string, data map[string]interface{}) error {
	t.writes = append(t.writes, bufferedWrite{kind: writeSet, col: col, id: id, data: copyFields(data)})
	return nil
}

func (t *memoryTx) Update(col Collection, id string, fields map[string]interface{}) error {
	t.writes = append(t.writes, bufferedWrite{kind: writeUpdate, col: col, id: id, data: copyFields(fields)})
	return nil
}

func (t *memoryTx) Delete(col Collection, id string) error {
	t.writes = append(t.writes, bufferedWrite{kind: writeDelete, col: col, id: id})
	return nil
}

func matchesAll(data map[string]interface{}, filters []Filter) bool {
	for _, f := range filters {
		if !matches(data, f) {
			return false
		}
	}
	return true
}

func matches(data map[string]interface{}, f Filter) bool {
	val, ok := lookupField(data, f.Field)
	if !ok {
		return false
	}
	switch f.Op {
	case "==":
		return compare(val, f.Value) == 0
	case "<":
		return compare(val, f.Value) < 0
	case "<=":
		return compare(val, f.Value) <= 0
	case ">":
		return compare(val, f.Value) > 0
	case ">=":
		return compare(val, f.Value) >= 0
	case "in":
		if list, ok := f.Value.([]interface{}); ok {
			for _, item := range list {
				if compare(val, item) == 0 {
					return true
				}
			}
		}
		return false
	}
	return false
}

// lookupField resolves a possibly dotted field path ("assignedTo.email").
func lookupField(data map[string]interface{}, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var cur interface{} = data
	for _, p := range parts {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// compare returns -1, 0 or 1 ordering a against b, coercing the numeric
// types the store hands back.
func compare(a, b interface{}) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	if a == b {
		return 0
	}
	return -1
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func copyFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return copyFields(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	}
	return v
}
