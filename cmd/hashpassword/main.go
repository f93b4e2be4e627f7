// Command hashpassword prints the ADMIN_PASSWORD_HASH value for a password
// read from stdin, single-quoted so godotenv does not expand the $ fields.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"doener-shop/libs"
	"doener-shop/utils"
)

func main() {
	logger := libs.NewLogger("development", "info", os.Stderr)

	fmt.Fprint(os.Stderr, "Admin password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		logger.WithError(err).Fatal("Failed to read password")
	}

	hash, err := utils.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to hash password")
	}
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}
