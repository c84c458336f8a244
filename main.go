package main

import "github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/cmd"

func main() {
	cmd.Execute()
}
