// Command versec is the Verse compiler's CLI front-end.
package main

import (
	"os"

	"github.com/BardsBallad/Verse/cmd/versec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
