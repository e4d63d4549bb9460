package main

import "pixelquest/cmd/pq/root"

func main() {
	root.Execute()
}
