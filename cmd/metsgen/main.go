package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/metsgen/internal/cli"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(metsgen.ExitPanic)
		}
	}()

	if os.Getenv("METSGEN_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(metsgen.ExitCodeForError(err))
	}
}
