/*
gitscribe - AI-assisted commit messages, tickets and change requests
from the state of a git working tree.
*/
package main

import (
	"os"

	"github.com/gitscribe/gitscribe/internal/cli"
	"github.com/gitscribe/gitscribe/internal/log"
	"github.com/gitscribe/gitscribe/internal/pipeline"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, GitCommit, BuildTime)
	if err := cli.Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(pipeline.ExitCode(err))
	}
}
