/*
main.go

pwgen generates random passwords from selectable character types.
*/
package main

import (
	"github.com/CodeMonkeyCybersecurity/pwgen/cmd"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/logger"
)

func main() {
	logger.InitFallback()
	cmd.Execute()
}
