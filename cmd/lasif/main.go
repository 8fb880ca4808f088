package main

import "github.com/SuwenJunliu/LASIF/internal/cli"

func main() {
	cli.Execute()
}
