// Command overloadtab prints and checks the overload table the library
// declares at startup. A build pins the table by its fingerprint, and
// external owners can check their declarations for conflicts before shipping.
package main

import (
	"fmt"
	"os"

	_ "github.com/on-the-ground/overload_ive_go/indexed"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
