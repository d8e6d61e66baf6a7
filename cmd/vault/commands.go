package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/cipher-keeper/internal/config"
	"github.com/MKhiriev/cipher-keeper/internal/crypto"
	"github.com/MKhiriev/cipher-keeper/internal/handler"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/output"
	"github.com/MKhiriev/cipher-keeper/internal/server"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/internal/tui"
	"github.com/MKhiriev/cipher-keeper/internal/utils"
	"github.com/MKhiriev/cipher-keeper/models"
)

const (
	cmdServe   = "serve"
	cmdImport  = "import"
	cmdList    = "list"
	cmdShow    = "show"
	cmdCopy    = "copy"
	cmdDelete  = "delete"
	cmdBrowse  = "browse"
	cmdToken   = "token"
	cmdKeygen  = "keygen"
	cmdEncrypt = "encrypt"
	cmdVersion = "version"
)

const defaultTokenSubject = "vault-cli"

var (
	errUsage          = errors.New("usage: vault [flags] serve|import|list|show|copy|delete|browse|token|keygen|encrypt|version [args]")
	errUnknownCommand = errors.New("unknown command")
	errServeRemote    = errors.New("serve needs a local database, unset the remote address")
	errNoSignKey      = errors.New("token needs SERVER_TOKEN_SIGN_KEY")
	errInvalidType    = errors.New("invalid record type")
	errEmptyImport    = errors.New("import file holds no records")
)

// run executes the subcommand named by args[0].
func run(ctx context.Context, cfg *config.StructuredConfig, args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	name, rest := args[0], args[1:]

	switch name {
	case cmdVersion:
		printBuildInfo(os.Stdout)
		return nil
	case cmdToken:
		return issueToken(os.Stdout, cfg.Server, rest)
	case cmdKeygen:
		return keygen(os.Stdout, crypto.NewKeyChainService(), rest)
	case cmdEncrypt:
		cipherStrings, err := unlock(cfg.App)
		if err != nil {
			return err
		}
		return encryptValue(os.Stdin, os.Stdout, cipherStrings, rest)
	case cmdServe:
		if cfg.Client.IsRemote() {
			return errServeRemote
		}
	case cmdImport, cmdList, cmdShow, cmdCopy, cmdDelete, cmdBrowse:
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	services, closeVault, err := openVault(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeVault()

	if name == cmdServe {
		return serve(ctx, services, cfg.Server, log)
	}

	c := &cli{
		vault:  services.VaultService,
		out:    os.Stdout,
		copy:   clipboard.WriteAll,
		logger: log,
	}
	return c.dispatch(ctx, name, rest)
}

func serve(ctx context.Context, services *service.Services, cfg config.Server, log *logger.Logger) error {
	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	log.Info().Str("address", cfg.HTTPAddress).Bool("auth", cfg.AuthEnabled()).Msg("starting read API")
	return srv.RunServer(ctx)
}

// issueToken prints an access token for the read API.
func issueToken(w io.Writer, cfg config.Server, args []string) error {
	fs := flag.NewFlagSet(cmdToken, flag.ContinueOnError)
	subject := fs.String("subject", defaultTokenSubject, "token subject")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cfg.AuthEnabled() {
		return errNoSignKey
	}

	token, err := utils.GenerateAccessToken(cfg.TokenIssuer, *subject, cfg.TokenDuration, cfg.TokenSignKey)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)
	return err
}

// cli runs the record commands against a vault service.
type cli struct {
	vault  service.VaultService
	out    io.Writer
	copy   func(string) error
	logger *logger.Logger
}

func (c *cli) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case cmdImport:
		return c.importFile(ctx, args)
	case cmdList:
		return c.list(ctx, args)
	case cmdShow:
		return c.show(ctx, args)
	case cmdCopy:
		return c.copyField(ctx, args)
	case cmdDelete:
		return c.delete(ctx, args)
	case cmdBrowse:
		return c.browse(ctx, args)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}
}

// importFile reads a JSON array (or a single object) of records from a
// file, or from stdin when the path is "-".
func (c *cli) importFile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import <file|->", errUsage)
	}

	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	data, err := decodeRecords(raw)
	if err != nil {
		return err
	}

	ids, err := c.vault.Import(ctx, data)
	if err != nil {
		return err
	}
	c.logger.Debug().Int("count", len(ids)).Msg("records imported")

	return output.NewPrinter(c.out, false).ImportResult(ids)
}

func decodeRecords(raw []byte) ([]models.CipherData, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errEmptyImport
	}

	if raw[0] == '{' {
		var single models.CipherData
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("decode import file: %w", err)
		}
		return []models.CipherData{single}, nil
	}

	var data []models.CipherData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	if len(data) == 0 {
		return nil, errEmptyImport
	}
	return data, nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdList, flag.ContinueOnError)
	var fa filterArgs
	fa.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := fa.filter(fs)
	if err != nil {
		return err
	}

	views, err := c.vault.ListViews(ctx, filter)
	if err != nil {
		return err
	}

	return output.NewPrinter(c.out, false).List(views)
}

func (c *cli) show(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdShow, flag.ContinueOnError)
	reveal := fs.Bool("reveal", false, "print secret fields in clear text")
	asJSON := fs.Bool("json", false, "print the decrypted record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: show [-reveal] [-json] <id>", errUsage)
	}

	view, err := c.vault.GetView(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	return output.NewPrinter(c.out, *reveal).View(view)
}

func (c *cli) copyField(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: copy <id> [field]", errUsage)
	}

	view, err := c.vault.GetView(ctx, args[0])
	if err != nil {
		return err
	}

	field := output.DefaultCopyField(view)
	if len(args) == 2 {
		field = args[1]
	}

	value, err := output.FieldValue(view, field)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, output.FieldNames(view))
	}

	if err = c.copy(value); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	_, err = fmt.Fprintf(c.out, "copied %s of %q\n", field, view.Name)
	return err
}

func (c *cli) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", errUsage)
	}

	if err := c.vault.Delete(ctx, args[0]); err != nil {
		return err
	}

	_, err := fmt.Fprintf(c.out, "deleted %s\n", args[0])
	return err
}

func (c *cli) browse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdBrowse, flag.ContinueOnError)
	var fa filterArgs
	fa.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := fa.filter(fs)
	if err != nil {
		return err
	}

	return tui.New(c.vault, filter, c.logger).Run(ctx)
}

// filterArgs are the record filter flags shared by list and browse.
type filterArgs struct {
	folder     string
	org        string
	recordType string
}

func (f *filterArgs) register(fs *flag.FlagSet) {
	fs.StringVar(&f.folder, "folder", "", "only records in this folder")
	fs.StringVar(&f.org, "org", "", "only records of this organization")
	fs.StringVar(&f.recordType, "type", "", "only records of this type (login, secure_note, card, identity)")
}

func (f *filterArgs) filter(fs *flag.FlagSet) (models.CipherFilter, error) {
	var (
		filter models.CipherFilter
		err    error
	)

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "folder":
			filter.FolderID = &f.folder
		case "org":
			filter.OrganizationID = &f.org
		case "type":
			t, ok := models.ParseCipherType(f.recordType)
			if !ok {
				err = fmt.Errorf("%w: %q", errInvalidType, f.recordType)
				return
			}
			filter.Type = &t
		}
	})

	return filter, err
}
