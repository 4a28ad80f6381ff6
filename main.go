package main

import "github.com/pingcap/pwgen/cmd"

func main() {
	cmd.Execute()
}
