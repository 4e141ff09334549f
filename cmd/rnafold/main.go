// Command rnafold predicts RNA secondary structures by score minimisation.
//
//	rnafold fold GGGAAAUCCC
//	rnafold fold -i seqs.fa --uniform -1 -f json
//	rnafold fold -i problem.yaml --charge-multiloop
//	rnafold bench --points 10 --max-length 200
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
