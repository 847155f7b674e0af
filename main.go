package main

import "github.com/hireline/screener-backend/cmd"

func main() {
	cmd.Init()
}
