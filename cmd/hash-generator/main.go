// Command hash-generator prints argon2id hashes for seeding user rows by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/proyectozoo/zoo-api/internal/service/auth"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s password [password...]\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	hasher := auth.NewArgon2Hasher(auth.DefaultArgon2Params)
	for _, password := range flag.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
	}
}
