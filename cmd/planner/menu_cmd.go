package main

import (
	"github.com/fentz26/planner/internal/menu"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the numbered console menu",
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	m := menu.New(reg, cmd.InOrStdin(), cmd.OutOrStdout())
	return m.Run()
}
