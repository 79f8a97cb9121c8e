package commands

import (
	"fmt"
	"os"

	"taskmaster/pkg/app"
	"taskmaster/pkg/store"
)

// newService opens persistence from config and primes the controller. A load
// fallback to seeded defaults is a notice, not a failure; the command still
// runs against the usable board.
func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	s := &app.Service{Persistence: p}
	if err := s.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "taskmaster: %v (starting from defaults)\n", err)
	}
	return s, nil
}
