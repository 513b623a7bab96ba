package main

import "github.com/krushavadher/AI-Powered-Task-Prioritizer/cmd"

func main() {
	cmd.Execute()
}
