// Package db provides the embedded database schema and demo catalog.
package db

import _ "embed"

// Schema contains the DDL statements for all application tables.
//
//go:embed migrations/001_schema.sql
var Schema string

// DemoCatalog is the seed catalog used when seed-db is run without a file.
//
//go:embed seed/catalog.yaml
var DemoCatalog []byte
