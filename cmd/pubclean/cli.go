package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *yaml.Config
	Registry *pubtext.Registry
	Articles pubtext.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"PUBCLEAN_DB" default:"${default_db}" help:"Path to the article database"`
	Config  string `name:"config" env:"PUBCLEAN_CONFIG" type:"path" help:"Journal registry file (defaults to the built-in registry)"`
	Verbose bool   `short:"v" help:"Log every extraction and publisher resolution"`

	Generate GenerateCmd `cmd:"" help:"Regenerate cleaned records for fetched articles"`
	Clean    CleanCmd    `cmd:"" help:"Clean a single article file and print the record"`
	Add      AddCmd      `cmd:"" help:"Register an article identity"`
	Journals JournalsCmd `cmd:"" help:"List the journal registry"`
	Xrefs    XrefsCmd    `cmd:"" help:"List unique DOIs cited by articles"`
	Status   StatusCmd   `cmd:"" help:"Count articles by extraction state"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	PMIDs       []string `arg:"" optional:"" name:"pmid" help:"Articles to process (default: all registered)"`
	Src         string   `required:"" type:"existingdir" help:"Directory of fetched <pmid>.html / <pmid>.xml files"`
	Out         string   `required:"" type:"path" help:"Directory for cleaned <pmid>.txt records"`
	ISSN        string   `name:"issn" help:"Only process articles of this journal"`
	State       string   `help:"Only process articles whose last state matches (complete, partial, failed)"`
	Force       bool     `short:"f" help:"Regenerate records that are newer than their source"`
	Normalize   bool     `short:"n" help:"Reduce numeric literals to canonical tokens"`
	RequireAll  bool     `help:"Fail articles missing any of abstract, results or methods"`
	Concurrency int      `short:"c" default:"1" help:"Articles extracted at once"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	File       string `arg:"" type:"existingfile" help:"Article HTML or XML file"`
	ISSN       string `name:"issn" help:"Journal ISSN used to select the publisher"`
	PMID       string `help:"Article id (defaults to the file name)"`
	Format     string `default:"text" enum:"text,markdown,html" help:"Output format (text, markdown, html)"`
	Normalize  bool   `short:"n" help:"Reduce numeric literals to canonical tokens"`
	RequireAll bool   `help:"Fail if any of abstract, results or methods is missing"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	PMID    string `arg:"" name:"pmid" help:"PubMed ID"`
	DOI     string `name:"doi" help:"Article DOI"`
	ISSN    string `name:"issn" help:"Journal ISSN"`
	Journal string `help:"Journal name"`
	Year    int    `help:"Publication year"`
	PMCID   string `name:"pmcid" help:"PubMed Central ID"`
	Title   string `help:"Article title"`
}

// JournalsCmd is the "journals" subcommand.
type JournalsCmd struct {
	Publishers bool `help:"List publisher layouts instead of journals"`
}

// XrefsCmd is the "xrefs" subcommand.
type XrefsCmd struct {
	PMIDs []string `arg:"" optional:"" name:"pmid" help:"Articles to read (default: all registered)"`
	Src   string   `required:"" type:"existingdir" help:"Directory of fetched <pmid>.html / <pmid>.xml files"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
