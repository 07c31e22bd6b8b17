package main

import (
	"os"

	"github.com/z5dlabs/z5d-go/cmd/commands"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewPredictCmd(),
		commands.NewCalibCmd(),
		commands.VersionCmd,
	)

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
