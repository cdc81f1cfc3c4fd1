package main

import "gripper/host/cmd/gripperctl/cmd"

func main() {
	cmd.Execute()
}
