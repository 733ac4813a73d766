// cmd/entrocalc/main.go
package main

import (
	"entrocalc/internal/app"
	"entrocalc/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
