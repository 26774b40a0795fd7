// Package nlog defines the logging capability the core accepts at
// construction time, in place of the teacher's package-level
// fmt.Printf debug prints (console/bus.go's BIOS REPL) and as a
// substitute for a process-wide logging singleton.
package nlog

// Logger is satisfied by the glog-backed adapter in glogadapter as
// well as by a no-op stand-in for tests. Core packages only ever see
// this interface, never glog itself.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NoOp returns a Logger that discards everything, the default when a
// host doesn't care to wire one in.
func NoOp() Logger { return noop{} }

type noop struct{}

func (noop) Infof(format string, args ...any)  {}
func (noop) Errorf(format string, args ...any) {}
