package main

import "invoicing-backend/cmd"

func main() {
	cmd.Execute()
}
