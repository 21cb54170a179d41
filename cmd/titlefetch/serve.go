package main

import (
	"fmt"

	tfhttp "github.com/fwojciec/titlefetch/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := tfhttp.NewServer()
	server.Addr = c.Addr
	server.TitleService = deps.Titles
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stderr, "Listening on %s\n", server.URL())

	<-deps.Ctx.Done()
	return server.Close()
}
