// Command flatbench runs workloads against the flat containers and compares
// their backing strategies.
package main

import (
	"context"

	"github.com/amp-labs/amp-flat/shutdown"
	"github.com/spf13/cobra"
)

func main() {
	handler, ctx := shutdown.New(context.Background())
	stop := handler.Listen()

	err := NewCLI(handler).ExecuteContext(ctx)

	stop()
	handler.Shutdown()
	cobra.CheckErr(err)
}
