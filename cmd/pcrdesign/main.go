// cmd/pcrdesign/main.go
package main

import (
	"pcrdesign/internal/app"
	"pcrdesign/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
