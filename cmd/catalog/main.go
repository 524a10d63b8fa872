package main

import (
	_ "time/tzdata"

	"github.com/jhoicas/sitta-api/internal/cli"
)

func main() {
	cli.Execute()
}
