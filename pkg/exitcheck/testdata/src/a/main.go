package main

import (
	"fmt"
	osx "os"
)

func main() {
	defer fmt.Println("unreachable")
	osx.Exit(1) // want "calling os.Exit in main"
}

func exit(code int) {
	osx.Exit(code)
}
