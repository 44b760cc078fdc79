package main

import (
	"context"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"projctx/cmd"
	"projctx/pkg/logging"
)

func main() {
	err := cmd.Execute(context.Background())

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if logging.Logger != nil && (term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr)) {
		if syncErr := logging.Logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
