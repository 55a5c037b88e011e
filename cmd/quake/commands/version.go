package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

// NewVersionCommand returns a cli.Command for "quake version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows quake and quake CLI version",
		Action: func(c *cli.Context) error {
			var cliVersion, libVersion string
			info, ok := debug.ReadBuildInfo()

			if !ok {
				fmt.Println(`version not available in GOPATH mode; use "go get" with Go modules enabled`)
				return nil
			}

			cliVersion = info.Main.Version
			for _, mod := range info.Deps {
				if mod.Path != "github.com/seiskit/quake" {
					continue
				}
				// if a replace directive is set, the library is in development mode
				if mod.Replace != nil {
					libVersion = "(devel)"
					break
				}
				libVersion = mod.Version
				break
			}
			fmt.Printf("quake %v\nquake CLI %v\n", libVersion, cliVersion)
			return nil
		},
	}
}
