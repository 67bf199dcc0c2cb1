// Command hash-password prints an argon2id salt and hash for each password
// argument, in the form stored in the users table. Useful for seeding
// fixtures by hand.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/task-tracker-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, auth.NewArgon2Hasher()); err != nil {
		fmt.Fprintf(os.Stderr, "hash-password: %v\n", err)
		os.Exit(1)
	}
}

func run(passwords []string, out io.Writer, hasher auth.CredentialHasher) error {
	if len(passwords) == 0 {
		return fmt.Errorf("usage: hash-password <password>...")
	}

	for _, password := range passwords {
		salt, err := hasher.GenerateSalt()
		if err != nil {
			return err
		}
		hash, err := hasher.Hash(password, salt)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "salt: %s\nhash: %s\n\n", salt, hash)
	}
	return nil
}
