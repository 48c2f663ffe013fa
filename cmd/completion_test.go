package cmd

import "testing"

// The completion tree and the command registry are maintained by hand; this
// keeps them in sync.
func TestCompletionCoversCommands(t *testing.T) {
	sub := Completion().Sub

	registered := map[string]bool{}
	for _, r := range commands() {
		name := r.Name()
		registered[name] = true
		if _, ok := sub[name]; !ok {
			t.Errorf("command %q has no completion entry", name)
		}
	}

	for name := range sub {
		if !registered[name] {
			t.Errorf("completion entry %q matches no registered command", name)
		}
	}
}
