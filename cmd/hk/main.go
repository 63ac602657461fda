package main

import "habitkeep/cmd/hk/root"

func main() {
	root.Execute()
}
