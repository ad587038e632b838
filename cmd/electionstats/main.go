package main

import "electionstats/cmd/electionstats/cmd"

func main() {
	cmd.Execute()
}
