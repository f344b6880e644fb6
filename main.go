package main

import "github.com/Naxdouglas/contract-renewal-sys/cmd"

func main() {
	cmd.Execute()
}
