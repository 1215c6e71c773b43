// Command handles is an interactive inspector for a live ownership
// tracker. It simulates resources being adopted, moved, released, and
// disposed, and shows the tracker's live table and event log.
//
// Usage:
//
//	handles        start the inspector
//	handles -v     also log leak audits to stderr
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wippyai/owned/track"
)

func main() {
	verbose := flag.Bool("v", false, "Log leak audits to stderr")
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		track.SetLogger(logger)
	}

	if err := runInspector(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInspector() error {
	m := newModel()
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}

	// Audit on the way out: anything the user never disposed or
	// released is reported as a leak.
	if fm, ok := final.(model); ok {
		if auditErr := fm.tr.Close(); auditErr != nil {
			fmt.Fprintf(os.Stderr, "audit: %v\n", auditErr)
		}
	}
	return nil
}
