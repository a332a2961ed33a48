package main

import (
	"fmt"

	"github.com/consensys/paramfetch"
	"github.com/spf13/cobra"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "print the resolved parameter cache directory",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(paramfetch.ParamDir(fDataDir))
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
