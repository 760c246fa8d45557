// Command wirepath routes, culls, validates, and exports diagram files
// from the terminal. It is a thin cobra front-end over the library
// packages; all routing behavior lives in router/ and friends.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
