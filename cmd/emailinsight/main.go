package main

import "github.com/Bahjat/email-insight/internal/cli"

func main() {
	cli.Execute()
}
