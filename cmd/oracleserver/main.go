//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// oracleserver serves canned Helius-style JSON from a fixtures directory so
// the bot can run against a local oracle:
//
//	fixtures/balances_<wallet>.json     -> /v0/addresses/<wallet>/balances
//	fixtures/transactions_<addr>.json   -> /v0/addresses/<addr>/transactions
//	fixtures/metadata.json              -> /v0/tokens/metadata
//	fixtures/transactions.json          -> /v0/transactions/
//
// Files are read on each request, so they can be edited while the server is
// running.
func main() {
	port := flag.Int("port", 8090, "Port to listen on")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: oracleserver [options] <fixtures-dir>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Fatalf("Fixtures directory does not exist: %s", dir)
	}

	http.HandleFunc("/v0/addresses/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 4 {
			http.NotFound(w, r)
			return
		}
		address, kind := parts[2], parts[3]
		serveJSONFile(w, filepath.Join(dir, fmt.Sprintf("%s_%s.json", kind, address)))
	})

	http.HandleFunc("/v0/tokens/metadata", func(w http.ResponseWriter, _ *http.Request) {
		serveJSONFile(w, filepath.Join(dir, "metadata.json"))
	})

	http.HandleFunc("/v0/transactions/", func(w http.ResponseWriter, _ *http.Request) {
		serveJSONFile(w, filepath.Join(dir, "transactions.json"))
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Fake oracle listening on %s, fixtures from %s", addr, dir)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func serveJSONFile(w http.ResponseWriter, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("No fixture for request: %s", path)
		http.Error(w, fmt.Sprintf("fixture not found: %s", filepath.Base(path)), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
