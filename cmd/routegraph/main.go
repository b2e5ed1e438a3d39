// Command routegraph computes minimum spanning tree costs, all-pairs shortest
// paths and attribute-connected groups from plain-text inputs.
//
//	routegraph mst data.txt
//	routegraph paths data.txt --from JFK --to LAX
//	routegraph connected users.csv --target "United States"
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
