package main

import (
	"campaign-manager/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
