package main

import "github.com/dariyanisacc/healthcare-sql-project/cmd"

func main() {
	cmd.Execute()
}
