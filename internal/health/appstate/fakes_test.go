package appstate

import (
	"context"
	"errors"
	"sync"
)

var errInjected = errors.New("injected storage failure")

type fakeKV struct {
	mu      sync.Mutex
	values  map[string][]byte
	failGet bool
	failPut bool
	failDel bool
	puts    int
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string][]byte{}}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, false, errInjected
	}
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeKV) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut {
		return errInjected
	}
	f.values[key] = append([]byte(nil), value...)
	f.puts++
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDel {
		return errInjected
	}
	delete(f.values, key)
	return nil
}

func (f *fakeKV) raw(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.values[key])
}
