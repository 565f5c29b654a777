// Command starksign hashes, signs and verifies messages with STARK curve
// keys from the command line. Values are given as 0x-prefixed hex or
// decimal strings; results are printed to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smallyu/go-stark-crypto/pkg/stark"
)

const usage = `Usage: starksign [-debug] <command> [arguments]

Commands:
  hash <a> <b>                      Pedersen hash of two field elements
  hash-elements <x>...              chained Pedersen hash of a list
  keygen                            generate a private key
  pubkey <private-key>              public key and stark key
  sign [-seed n] <private-key> <hash>
  verify <stark-key> <hash> <r> <s>
  selector <name>                   entry point selector
`

// errInvalidSignature makes the process exit with status 2.
var errInvalidSignature = errors.New("invalid signature")

var commands = map[string]func(args []string) error{
	"hash":          runHash,
	"hash-elements": runHashElements,
	"keygen":        runKeygen,
	"pubkey":        runPubkey,
	"sign":          runSign,
	"verify":        runVerify,
	"selector":      runSelector,
}

func main() {
	debug := flag.Bool("debug", false, "sets log level to debug")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	run, ok := commands[name]
	if !ok {
		flag.Usage()
		log.Fatal().Str("command", name).Msg("Unknown command")
	}
	err := run(args)
	if errors.Is(err, errInvalidSignature) {
		log.Error().Str("command", name).Msg("Invalid signature")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", name).Msg("Command failed")
	}
}

func runHash(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	xs, err := parseElements(args)
	if err != nil {
		return err
	}
	log.Debug().Stringer("a", xs[0]).Stringer("b", xs[1]).Msg("Hashing pair")
	fmt.Println(stark.PedersenHash(xs[0], xs[1]))
	return nil
}

func runHashElements(args []string) error {
	xs, err := parseElements(args)
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(xs)).Msg("Hashing elements")
	fmt.Println(stark.ComputeHashOnElements(xs...))
	return nil
}

func runKeygen(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("keygen takes no arguments")
	}
	priv, err := stark.GeneratePrivateKey(nil)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	starkKey, err := stark.StarkKey(priv)
	if err != nil {
		return err
	}
	fmt.Printf("Private Key: %s\n", priv)
	fmt.Printf("Stark Key: %s\n", starkKey)
	return nil
}

func runPubkey(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	priv, err := stark.ParseFieldElement(args[0])
	if err != nil {
		return fmt.Errorf("could not parse private key: %w", err)
	}
	pub, err := stark.DerivePublicKey(priv)
	if err != nil {
		return err
	}
	fmt.Printf("Public Key: %s\n", pub)
	fmt.Printf("Stark Key: %s\n", pub.X())
	return nil
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	seedArg := fs.String("seed", "", "extra nonce entropy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", fs.NArg())
	}
	xs, err := parseElements(fs.Args())
	if err != nil {
		return err
	}

	var seed *big.Int
	if *seedArg != "" {
		var ok bool
		if seed, ok = new(big.Int).SetString(*seedArg, 0); !ok {
			return fmt.Errorf("could not parse seed %q", *seedArg)
		}
	}

	signer, err := stark.NewSigner(xs[0])
	if err != nil {
		return err
	}
	log.Debug().Stringer("stark_key", signer.StarkKey()).Stringer("hash", xs[1]).Msg("Signing")

	sig, err := signer.SignWithSeed(xs[1], seed)
	if err != nil {
		return fmt.Errorf("failed to sign: %w", err)
	}
	fmt.Printf("r: 0x%s\n", sig.R.Text(16))
	fmt.Printf("s: 0x%s\n", sig.S.Text(16))
	return nil
}

func runVerify(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("expected 4 arguments, got %d", len(args))
	}
	xs, err := parseElements(args[:2])
	if err != nil {
		return err
	}
	sig := &stark.Signature{}
	for i, dst := range []**big.Int{&sig.R, &sig.S} {
		v, ok := new(big.Int).SetString(args[2+i], 0)
		if !ok {
			return fmt.Errorf("could not parse signature component %q", args[2+i])
		}
		*dst = v
	}

	if !stark.VerifyStarkKey(xs[1], sig, xs[0]) {
		log.Debug().Stringer("stark_key", xs[0]).Stringer("hash", xs[1]).Msg("Verification failed")
		return errInvalidSignature
	}
	log.Info().Msg("Valid signature found")
	return nil
}

func runSelector(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	fmt.Println(stark.SelectorFromName(args[0]))
	return nil
}

func parseElements(args []string) ([]stark.FieldElement, error) {
	xs := make([]stark.FieldElement, len(args))
	for i, arg := range args {
		x, err := stark.ParseFieldElement(arg)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q: %w", arg, err)
		}
		xs[i] = x
	}
	return xs, nil
}
