// Command httpenum resolves HTTP status classes, status codes and request
// methods from names or integers.
//
//	httpenum class 404 client_error
//	httpenum -policy rfc9110 -format json class 799
//	httpenum code not_found 418
//	httpenum method get Patch
package main

import (
	"os"

	"github.com/arthur-teixeira/http-enum/cli"
	"github.com/arthur-teixeira/http-enum/config"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, config.Load()))
}
