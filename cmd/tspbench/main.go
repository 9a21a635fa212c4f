// tspbench drives the tour search without a window: it runs a strategy for
// a fixed number of steps or a fixed time, compares strategies on the same
// points and writes the results in any of the export formats.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := newRootCmd(log).Execute(); err != nil {
		log.WithError(err).Error("tspbench failed")
		os.Exit(1)
	}
}
