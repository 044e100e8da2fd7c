// dump-pruner applies a calendar-aware retention policy to dated backup files.
//
// A backup named like db-20250101.sql.gz is classified by its embedded date:
//   - the 1st of a month is kept for 12 months
//   - a Monday is kept for 28 days
//   - any other day is kept for 6 days
//
// Usage:
//
//	# Report what would be removed from /backup
//	dump-pruner
//
//	# Remove expired dumps from another directory
//	dump-pruner --dir /srv/pg --glob 'app-*.sql.gz' --delete
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop between files on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cmd := newRootCmd(time.Now)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
