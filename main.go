package main

import "github.com/kennycyb/pars/app/cmd"

// Version is set during build via -ldflags.
var Version = "dev"

func main() {
	cmd.Execute(Version)
}
