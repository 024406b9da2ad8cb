// Command atlas prints the DDL of the gorm models for Atlas migrations.
package main

import (
	"cafe/src/models"
	"flag"
	"fmt"
	"io"
	"os"

	"ariga.io/atlas-provider-gorm/gormschema"
)

func main() {
	dialect := flag.String("dialect", "postgres", "postgres or sqlite")
	flag.Parse()

	stmts, err := gormschema.New(*dialect).Load(models.All()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load gorm schema: %v\n", err)
		os.Exit(1)
	}
	io.WriteString(os.Stdout, stmts)
}
