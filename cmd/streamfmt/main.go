// SPDX-License-Identifier: EPL-2.0

// Command streamfmt decodes, compares and ranks audio stream format
// descriptors, and probes audio files for theirs.
package main

import (
	"os"

	"github.com/ik5/streamfmt/internal/logging"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log := logging.New("error", false, os.Stderr)
		log.Error().Err(err).Msg("streamfmt failed")
		os.Exit(1)
	}
}
