package main

import "github.com/wpgtech/tech-events/internal/cli"

func main() {
	cli.Execute()
}
