package main

import "petal/cmd/petal/root"

func main() {
	root.Execute()
}
