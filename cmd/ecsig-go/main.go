package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/coinbase/ecsig-go/pkg/ecsig"
	"github.com/coinbase/ecsig-go/pkg/ecsig/compactsig"
)

var toDER = flag.Bool("to-der", false,
	"convert a 64-byte compact signature to DER instead of DER to compact")

func main() {
	flag.Parse()
	log.Printf("ecsig-go version: %s", ecsig.Version())

	if flag.NArg() != 1 {
		fmt.Println("usage: ecsig-go [-to-der] <hex signature>")
		return
	}

	sig, err := hex.DecodeString(flag.Arg(0))
	if err != nil {
		log.Fatalf("decode hex: %v", err)
	}

	var out []byte
	if *toDER {
		out, err = compactsig.ToDER(sig)
	} else {
		out, err = compactsig.FromDER(sig)
	}
	if err != nil {
		log.Fatalf("convert signature: %v", err)
	}
	fmt.Println(hex.EncodeToString(out))
}
