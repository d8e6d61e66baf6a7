package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/cipher-keeper/internal/crypto"
	"github.com/MKhiriev/cipher-keeper/internal/domain"
)

var (
	errNothingToGenerate = errors.New("keygen: nothing to generate, pass -org or keep -salt")
	errOrgKeyExists      = errors.New("organization already has a key")
)

// keygen prints a fresh KDF salt and creates organization keys. With
// -keys-file the new keys are merged into that file, otherwise they are
// printed in the keys file format.
func keygen(w io.Writer, keyChain crypto.KeyChainService, args []string) error {
	fs := flag.NewFlagSet(cmdKeygen, flag.ContinueOnError)
	withSalt := fs.Bool("salt", true, "print a new APP_KDF_SALT")
	keysFile := fs.String("keys-file", "", "organization keys file to add the new keys to")
	var orgs []string
	fs.Func("org", "organization id to create a key for (repeatable)", func(s string) error {
		if s == "" {
			return errors.New("empty organization id")
		}
		orgs = append(orgs, s)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: keygen [-salt=false] [-org id]... [-keys-file path]", errUsage)
	}
	if !*withSalt && len(orgs) == 0 {
		return errNothingToGenerate
	}

	if *withSalt {
		salt, err := keyChain.GenerateSalt()
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "APP_KDF_SALT=%s\n", base64.StdEncoding.EncodeToString(salt)); err != nil {
			return err
		}
	}
	if len(orgs) == 0 {
		return nil
	}

	keys := make(map[string][]byte)
	if *keysFile != "" {
		existing, err := crypto.LoadKeysFile(*keysFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return err
		default:
			keys = existing
		}
	}

	for _, orgID := range orgs {
		if _, ok := keys[orgID]; ok {
			return fmt.Errorf("%w: %s", errOrgKeyExists, orgID)
		}
		key, err := keyChain.GenerateKey()
		if err != nil {
			return err
		}
		keys[orgID] = key
	}

	if *keysFile != "" {
		if err := crypto.SaveKeysFile(*keysFile, keys); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "wrote %d organization key(s) to %s\n", len(orgs), *keysFile)
		return err
	}

	encoded := make(map[string]string, len(keys))
	for orgID, key := range keys {
		encoded[orgID] = base64.StdEncoding.EncodeToString(key)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(encoded)
}

type encrypter interface {
	Encrypt(plain string, orgID *string) (*domain.EncString, error)
}

// encryptValue prints the cipher string of one value, for building import
// files by hand. The value is read from stdin when it is "-".
func encryptValue(in io.Reader, w io.Writer, enc encrypter, args []string) error {
	fs := flag.NewFlagSet(cmdEncrypt, flag.ContinueOnError)
	var orgID *string
	fs.Func("org", "encrypt with the key of this organization", func(s string) error {
		orgID = &s
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: encrypt [-org id] <value|->", errUsage)
	}

	plain := fs.Arg(0)
	if plain == "-" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read value: %w", err)
		}
		plain = strings.TrimRight(line, "\r\n")
	}

	encrypted, err := enc.Encrypt(plain, orgID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, encrypted.EncryptedString())
	return err
}
