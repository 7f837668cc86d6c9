package main

import "github.com/dbsmedya/primesieve/cmd/primesieve/cmd"

func main() {
	cmd.Execute()
}
