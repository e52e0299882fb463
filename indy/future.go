//go:build indy

package indy

import (
	"sync"

	"github.com/findy-network/findy-wrapper-go"
	"github.com/findy-network/findy-wrapper-go/dto"
	"github.com/lainio/err2/try"
)

type state uint32

const (
	empty state = iota
	triggered
	consumed
)

// Future is a lazily read result of a libindy call. The result is read from
// the findy.Channel at the first access. Accessors throw an err2 exception
// if the call failed, so callers must have an err2 handler.
type Future struct {
	on state
	v  *dto.Result
	ch findy.Channel
	lo sync.Mutex
}

// NewFuture changes the findy.Channel to a Future.
func NewFuture(ch findy.Channel) *Future {
	return &Future{ch: ch, on: triggered}
}

func (f *Future) value() *dto.Result {
	f.lo.Lock()
	defer f.lo.Unlock()
	if f.on == triggered {
		r := <-f.ch
		f.on = consumed
		f.v = &r
		try.To(r.Err())
	}
	return f.v
}

// Err waits the result and returns its error without throwing it.
func (f *Future) Err() error {
	f.lo.Lock()
	defer f.lo.Unlock()
	if f.on == triggered {
		r := <-f.ch
		f.on = consumed
		f.v = &r
	}
	if f.v == nil {
		return nil
	}
	return f.v.Err()
}

// ErrCode returns the libindy error code of the result.
func (f *Future) ErrCode() int {
	if f.Err() == nil {
		return 0
	}
	return f.v.ErrCode()
}

func (f *Future) Int() (i int) {
	if r := f.value(); r != nil {
		i = r.Handle()
	}
	return
}

func (f *Future) Strs() (s1, s2 string) {
	if r := f.value(); r != nil {
		s1 = r.Str1()
		s2 = r.Str2()
	}
	return
}

func (f *Future) Str1() string {
	s1, _ := f.Strs()
	return s1
}
