// coreutils - a multitool of classic Unix text filters (cat, head, wc, uniq, cut, find).
package main

import (
	"github.com/hvpaiva/coreutils/internal/cli"
)

func main() {
	cli.Execute()
}
