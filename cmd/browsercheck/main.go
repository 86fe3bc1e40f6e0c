// Command browsercheck probes browser device capabilities and scores them.
package main

import (
	"github.com/probelab/browsercheck/cmd"
)

func main() {
	cmd.Execute()
}
