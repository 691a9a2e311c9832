package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the available renderers",
	Long:  `Shows the rendering backends that can be passed to 'tetris play --backend'.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeBackends(cmd.OutOrStdout(), registry.List())
	},
}

func writeBackends(w io.Writer, backends []registry.BackendInfo) {
	if len(backends) == 0 {
		fmt.Fprintln(w, "No backends available.")
		return
	}

	fmt.Fprintln(w, "Available backends:")
	fmt.Fprintln(w)

	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, b := range backends {
		marker := ""
		if b.Name == defaultBackend {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %-*s  %s%s\n", maxNameLen, b.Name, b.Description, marker)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tetris play --backend <name>' to use one.")
}
