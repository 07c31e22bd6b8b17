package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/z5dlabs/z5d-go/cmd/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, version.String())
	},
}
