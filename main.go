package main

import "github.com/krish230803/Ai-Interview-System/internal/cli"

func main() {
	cli.Execute()
}
