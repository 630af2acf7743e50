package arbor

import "os"

// abortExitCode is the process exit code used when a payload conversion
// panics while a node is half rewritten.
const abortExitCode = 101

// exit is swappable for tests.
var exit = os.Exit

// AbortOnPanic runs f and terminates the process if f panics.
//
// The mutating tree operations call their payload-conversion closures
// between reading a node's old payload out and writing the new one in.
// A panic unwinding out of that window would leave the node half
// rewritten, so conversions run under this guard instead: the panic is
// logged and the process exits, the tree never becomes observable in a
// broken state.
func AbortOnPanic(what string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			T().Errorf("panic during %s, aborting: %v", what, r)
			exit(abortExitCode)
		}
	}()
	f()
}

// ConvertOrAbort runs a payload conversion under the AbortOnPanic
// guard.
func ConvertOrAbort[From, To any](what string, convert func(From) To, payload From) To {
	var converted To
	AbortOnPanic(what, func() {
		converted = convert(payload)
	})
	return converted
}
