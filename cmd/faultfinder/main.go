// faultfinder searches boiler fault codes by code, brand or model.
//
// Usage:
//
//	faultfinder [--data faults.yaml] [--theme light|dark] [--query E110]
//	faultfinder search <query>
//	faultfinder brands
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
