package main

import "dentalflow-backend/cmd"

func main() {
	cmd.Execute()
}
