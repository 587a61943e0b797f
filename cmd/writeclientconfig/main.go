package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spec-kit/shift-scheduler/internal/clientconfig"
)

func main() {
	out := flag.String("out", "frontend/js/config.js", "path of the generated client config file")
	flag.Parse()

	_ = godotenv.Load()

	in, err := clientconfig.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := clientconfig.Write(*out, in); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}
