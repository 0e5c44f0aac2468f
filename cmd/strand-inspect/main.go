// Command strand-inspect prints the capabilities of the default Strand
// crypto backend.
//
// Usage:
//
//	strand-inspect [flags]
//
// Flags:
//
//	-suites        List the default cipher suites in preference order
//	-groups        List the compiled-in key exchange groups
//	-digest string Hash stdin with the named algorithm (SHA256, SHA384)
//
// With no flags, everything is listed.
//
// Examples:
//
//	# Show the backend's negotiation tables
//	strand-inspect
//
//	# Transcript-hash a captured handshake blob
//	strand-inspect -digest SHA384 < handshake.bin
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/provider"
)

var (
	suites    = flag.Bool("suites", false, "List the default cipher suites in preference order")
	groups    = flag.Bool("groups", false, "List the compiled-in key exchange groups")
	digestAlg = flag.String("digest", "", "Hash stdin with the named algorithm (SHA256, SHA384)")
)

func main() {
	flag.Parse()

	if *digestAlg != "" {
		if err := digestStdin(*digestAlg); err != nil {
			fmt.Fprintf(os.Stderr, "strand-inspect: %v\n", err)
			os.Exit(1)
		}
		return
	}

	all := !*suites && !*groups
	if *suites || all {
		printSuites()
	}
	if *groups || all {
		printGroups()
	}
}

func printSuites() {
	fmt.Println("Default cipher suites (most preferred first):")
	for _, suite := range provider.Default.DefaultCipherSuites() {
		fmt.Printf("  0x%04x %-26s transcript %s\n",
			uint16(suite.ID), suite.ID, suite.HashAlgorithm())
	}
}

func printGroups() {
	fmt.Println("Key exchange groups (most preferred first):")
	for _, group := range provider.Default.KeyExchangeGroups() {
		fmt.Printf("  0x%04x %s\n", uint16(group.Name()), group.Name())
	}
}

func digestStdin(name string) error {
	var h crypto.Hash
	switch name {
	case "SHA256":
		h = provider.SHA256
	case "SHA384":
		h = provider.SHA384
	default:
		return fmt.Errorf("unknown digest algorithm %q", name)
	}

	ctx := h.Start()
	buf := make([]byte, 32*1024)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			ctx.Update(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	out := ctx.Finish()
	fmt.Printf("%s %x\n", h.Algorithm(), out.Bytes())
	return nil
}
