package main

import "github.com/lechnerc77/github-pr-analytics/cmd"

func main() {
	cmd.Execute()
}
