package main

import (
	"os"

	"github.com/Arlahanmanthrao1/school/apps/api/di"
	"github.com/Arlahanmanthrao1/school/core"
)

func main() {
	conf := core.NewConfig()
	logger := di.NewLogger(conf, "ADMIN : ")

	// start CLI
	cli := commandLine{
		conf:     conf,
		logger:   logger,
		out:      os.Stdout,
		newRelay: newRelay,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("\nerror: " + err.Error())
		}
		os.Exit(1)
	}
}
