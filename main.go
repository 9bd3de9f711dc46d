package main

import "github.com/sidarora28/todo-md/cmd"

func main() {
	cmd.Execute()
}
