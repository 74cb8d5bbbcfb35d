package main

import (
	"fmt"

	"github.com/joshuapare/memkit/mem"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPagesizeCmd())
}

func newPagesizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pagesize",
		Short: "Print the operating system page size",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%d\n", mem.PageSize())
		},
	}
}
