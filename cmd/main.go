package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	// glog registers its flags on the standard flag set; cobra parses them.
	_ = flag.CommandLine.Parse(nil)

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	code := a.execute(os.Args[1:])

	glog.Flush()
	os.Exit(code)
}
