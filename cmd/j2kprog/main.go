// Command j2kprog prints the packet sequence of a JPEG2000 tile in a given
// progression order.
//
//	j2kprog list --order RLCP --layers 3 --levels 2 --components 3 --precincts 4
//	j2kprog count --tile tile.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
