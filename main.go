package main

import "github.com/nabilahcare/klinik_backend/cmd"

func main() {
	cmd.Execute()
}
