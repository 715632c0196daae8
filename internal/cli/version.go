package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
)

type versionInfo struct {
	Version          string   `json:"version"`
	GoVersion        string   `json:"go_version"`
	Platform         string   `json:"platform"`
	TransactionTypes int      `json:"transaction_types"`
	Languages        []string `json:"languages"`
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version information for xrplwallet including the Go version and the modeled transaction types.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:          Version,
				GoVersion:        runtime.Version(),
				Platform:         runtime.GOOS + "/" + runtime.GOARCH,
				TransactionTypes: len(tx.AllTypes()),
			}
			for _, tag := range explain.SupportedLanguages {
				info.Languages = append(info.Languages, tag.String())
			}

			return a.print(cmd, info, func(w io.Writer) {
				fmt.Fprintf(w, "xrplwallet version %s\n", info.Version)
				fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
				fmt.Fprintf(w, "OS/Arch: %s\n", info.Platform)
				fmt.Fprintf(w, "Transaction types: %d\n", info.TransactionTypes)
				fmt.Fprintf(w, "Languages: %v\n", info.Languages)
			})
		},
	}
}
