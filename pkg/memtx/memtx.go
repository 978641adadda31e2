package memtx

import (
	"context"
	"errors"
	"sync"
)

// ErrWriteInReadOnly возвращается при попытке открыть пишущую единицу работы внутри DoReadOnly
var ErrWriteInReadOnly = errors.New("memtx: write unit of work nested in read-only one")

type mode int

const (
	modeRead mode = iota + 1
	modeWrite
)

type ctxKey struct{}

// Manager единица работы для in-memory хранилищ.
// Пишущие операции выполняются строго последовательно, читающие - параллельно,
// поэтому промежуточное состояние пишущей операции никогда не видно читателям.
type Manager struct {
	mu sync.RWMutex
}

// New создает новый менеджер
func New() *Manager {
	return &Manager{}
}

// Do эквивалентен DoSerializable: в памяти других уровней изоляции нет
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	switch current(ctx) {
	case modeWrite:
		return fn(ctx)
	case modeRead:
		return ErrWriteInReadOnly
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, ctxKey{}, modeWrite))
}

// DoReadOnly выполняет fn под разделяемой блокировкой
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if current(ctx) != 0 {
		return fn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(context.WithValue(ctx, ctxKey{}, modeRead))
}

func current(ctx context.Context) mode {
	v, _ := ctx.Value(ctxKey{}).(mode)
	return v
}
