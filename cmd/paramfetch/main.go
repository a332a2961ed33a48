// Command paramfetch downloads, verifies and inspects the Filecoin proof
// parameter cache from the command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
