// Package main provides integration tests for the keymapcheck CLI.
package main

import (
	"context"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/divsmith/zmk-keymap-tools/internal/app"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"keymapcheck": func() {
			ctx := context.Background()
			if err := app.RunCheck(ctx, os.Args, os.Stdout, os.Stderr, nil); err != nil {
				os.Exit(1)
			}
		},
	})
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
