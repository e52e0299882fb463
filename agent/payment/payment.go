/*
Package payment is the process wide payment method mock. The mock payment
method is registered once per process and it stays registered until the
process exits. Registering it again is a no-op which returns the result of
the first registration.
*/
package payment

import (
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
)

// MethodNull is the name of the mock payment method.
const MethodNull = "null"

// Mock is a payment method which is registered at most once.
type Mock struct {
	method   string
	register func() error

	once   sync.Once
	err    error
	active atomic.Bool
}

// NewMock returns a mock for the method. The register function does the
// actual registration, and it can be nil.
func NewMock(method string, register func() error) *Mock {
	return &Mock{method: method, register: register}
}

var std = NewMock(MethodNull, nil)

// Default returns the process wide mock of the null payment method.
func Default() *Mock {
	return std
}

// Init registers the null payment method for the process.
func Init() error {
	return std.Init()
}

// Active tells if the null payment method is registered.
func Active() bool {
	return std.Active()
}

// Init registers the payment method. Only the first call registers, the
// following calls return the first result.
func (m *Mock) Init() error {
	m.once.Do(func() {
		if m.register != nil {
			m.err = m.register()
		}
		if m.err != nil {
			glog.Warningf("payment method %s: %v", m.method, m.err)
			return
		}
		m.active.Store(true)
		if glog.V(3) {
			glog.Infof("payment method %s registered", m.method)
		}
	})
	return m.err
}

func (m *Mock) Active() bool {
	return m.active.Load()
}

func (m *Mock) Method() string {
	return m.method
}
