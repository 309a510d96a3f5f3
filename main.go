// Package main is the entry point for the cfmt application.
package main

import (
	"github.com/cfmt-cli/cfmt/cmd"
	"github.com/cfmt-cli/cfmt/config"
	"github.com/cfmt-cli/cfmt/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
