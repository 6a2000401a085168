package main

import (
	"github.com/osuc/buscacursos/internal/cli"
)

func main() {
	cli.Execute()
}
