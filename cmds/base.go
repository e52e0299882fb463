package cmds

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/findy-network/findy-fixture/fixture"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var (
	ErrInvalid        = errors.New("invalid command, check arguments")
	ErrUnknownBackend = errors.New("unknown backend")
)

// BackendNative is the pure Go backend which is always available.
const BackendNative = "native"

type Result interface {
	JSON() ([]byte, error)
}

type Command interface {
	Validate() error
	Exec(w io.Writer) (r Result, err error)
}

// JSONResult is a Result of any JSON presentable value.
type JSONResult struct {
	V any
}

func (r JSONResult) JSON() ([]byte, error) {
	return dto.ToJSONBytes(r.V), nil
}

var backends = struct {
	sync.Mutex
	m map[string]func() *fixture.Env
}{
	m: map[string]func() *fixture.Env{
		BackendNative: fixture.Native,
	},
}

// RegisterBackend adds a named backend. Backends which need cgo are
// registered from files which have their own build tags.
func RegisterBackend(name string, newEnv func() *fixture.Env) {
	backends.Lock()
	defer backends.Unlock()
	backends.m[name] = newEnv
}

// Backend returns a new Env of the named backend.
func Backend(name string) (env *fixture.Env, err error) {
	backends.Lock()
	defer backends.Unlock()

	newEnv, ok := backends.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
	return newEnv(), nil
}

// Backends returns the names of the registered backends.
func Backends() []string {
	backends.Lock()
	defer backends.Unlock()

	names := make([]string, 0, len(backends.m))
	for name := range backends.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseLoggingArgs parses glog flags from the string, e.g.
// "-logtostderr=true -v=2".
func ParseLoggingArgs(s string) {
	args := make([]string, 1, 12)
	args[0] = os.Args[0]
	args = append(args, strings.Fields(s)...)
	orgArgs := os.Args
	os.Args = args
	flag.Parse()
	os.Args = orgArgs
}

// Fprintln is fmt.Fprintln but it allows writer to be nil. Note! it throws an
// error.
func Fprintln(w io.Writer, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintln(w, a...))
	}
}

// Fprintf is fmt.Fprintf but it allows writer to be nil. Note! it throws an
// error.
func Fprintf(w io.Writer, format string, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintf(w, format, a...))
	}
}

// PrintResult writes the result's JSON to w.
func PrintResult(w io.Writer, r Result) (err error) {
	defer err2.Handle(&err)

	Fprintln(w, string(try.To1(r.JSON())))
	return nil
}
