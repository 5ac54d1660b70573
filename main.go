package main

import "github.com/mselser95/signbench/cmd"

func main() {
	cmd.Execute()
}
