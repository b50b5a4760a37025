package blueprint

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the structural requirements of a definitions document:
// every variant needs a name, names are unique. Everything beyond that is
// the builder's job.
func (d *Definitions) Validate() error {
	if d == nil {
		return errors.New("definitions are nil")
	}
	if len(d.Variants) == 0 {
		return errors.New("no crop variants defined")
	}

	seen := make(map[string]struct{}, len(d.Variants))
	for i, def := range d.Variants {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("variants[%d].name is required", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("variants[%d].name %q is defined twice", i, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}
