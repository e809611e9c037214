package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
)

func main() {
	port := flag.Int("port", 2000, "Port to serve from")
	dbFile := flag.String("db", "chip-org.db", "SQLite database with catalog and settings; empty for in-memory")
	templateDir := flag.String("templatedir", "template", "Base-Directory with templates")
	staticDir := flag.String("staticdir", "static", "Directory with static resources")
	cacheTemplates := flag.Bool("cache-templates", true,
		"Cache templates. False for online editing while development.")
	flag.Parse()

	var blobs BlobStore
	if *dbFile == "" {
		blobs = NewInMemoryBlobStore()
	} else {
		db, err := sql.Open("sqlite3", *dbFile)
		if err != nil {
			log.Fatal(err)
		}
		store, err := NewSqlBlobStore(db, true)
		if err != nil {
			log.Fatal(err)
		}
		blobs = store
	}

	catalog := NewCatalog(blobs)
	templates := NewTemplateRenderer(*templateDir, *cacheTemplates)

	AddSiteHandler(catalog, templates, *staticDir)
	AddListHandler(catalog)
	AddDeviceHandler(catalog)
	AddTagHandler(catalog)
	AddSettingsHandler(catalog)
	AddTransferHandler(catalog)
	AddCompareHandler(catalog)
	AddMetricsHandler()

	log.Printf("Listening on :%d", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), nil))
}
