// Command cbordump decodes a CBOR document and prints a Go-syntax dump of
// the decoded value tree. It reads from the path given as its first
// argument, or from stdin if none is given.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/binorbit/cbor"
)

func main() {
	r, err := openInput()
	if err != nil {
		log.Fatalf("cbordump: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatalf("cbordump: reading input: %v", err)
	}

	v, err := cbor.Unmarshal(data)
	if err != nil {
		log.Fatalf("cbordump: %v", err)
	}

	fmt.Printf("%#v\n", v)
}

func openInput() (io.ReadCloser, error) {
	if len(os.Args) < 2 || os.Args[1] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(os.Args[1])
}
