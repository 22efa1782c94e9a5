package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/safespace-vault/safespace/internal/argon"
	"github.com/safespace-vault/safespace/internal/config"
)

func readSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Secret: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash a password or security key with the configured argon2 parameters",
	Long: "Reads a secret from the terminal (or stdin when piped) and prints its argon2id hash. Useful for " +
		"resetting a credential directly in the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = config.Init()

		secret, err := readSecret()
		if err != nil {
			return fmt.Errorf("safespace: hash: could not read secret: %w", err)
		}
		if secret == "" {
			return fmt.Errorf("safespace: hash: secret can not be empty")
		}

		config.Lock.RLock()
		h, err := argon.Hash(secret)
		config.Lock.RUnlock()
		if err != nil {
			return err
		}

		fmt.Println(h)
		return nil
	},
}
