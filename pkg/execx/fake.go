// pkg/execx/fake.go
package execx

import "context"

// Fake is a Runner that never spawns processes. Tests script it with a
// handler and inspect the recorded calls afterwards.
type Fake struct {
	// Handler decides the outcome of each call. A nil handler reports
	// success with empty output for everything.
	Handler func(cmd Command) (Result, error)

	// Calls records every command in invocation order
	Calls []Command
}

// Run records the command and delegates to the handler
func (f *Fake) Run(_ context.Context, cmd Command) (Result, error) {
	f.Calls = append(f.Calls, cmd)
	if f.Handler == nil {
		return Result{}, nil
	}
	return f.Handler(cmd)
}

// Names returns the executable names of all recorded calls, in order
func (f *Fake) Names() []string {
	names := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		names = append(names, c.Name)
	}
	return names
}
