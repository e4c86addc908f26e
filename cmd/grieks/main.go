// Command grieks conjugates Modern Greek verbs and prepares vocabulary
// entries for speech synthesis, from the command line or as an HTTP API.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
