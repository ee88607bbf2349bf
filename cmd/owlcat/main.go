// Command owlcat parses an OWL 2 Functional Syntax ontology and prints
// either its RDF triple set or, with -reason, the result of a query
// dispatched to an OWLLink server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/knakk/owl2"
	"github.com/knakk/owl2/functional"
	"github.com/knakk/owl2/owllink"
	"github.com/knakk/owl2/rdfconv"
	"gopkg.in/yaml.v3"
)

// config is the optional YAML file read via -config. It carries the
// server details the core library itself never reads from the
// environment.
type config struct {
	ServerURL      string `yaml:"server_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func main() {
	var (
		reason     = flag.Bool("reason", false, "drive the reasoner façade instead of printing RDF triples")
		configPath = flag.String("config", "", "YAML config naming the OWLLink server (required with -reason)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: owlcat [-reason -config file.yaml] ontology.ofn")
		os.Exit(2)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("owlcat: %v", err)
	}

	o, err := functional.Parse(string(src))
	if err != nil {
		log.Fatalf("owlcat: parse: %v", err)
	}

	if !*reason {
		ts, err := rdfconv.Convert(o, rdfconv.Options{})
		if err != nil {
			log.Fatalf("owlcat: convert: %v", err)
		}
		for _, t := range ts {
			fmt.Println(t.String())
		}
		return
	}

	if *configPath == "" {
		log.Fatal("owlcat: -reason requires -config")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("owlcat: %v", err)
	}

	ctx := context.Background()
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	r, err := owllink.NewReasoner(ctx, o, cfg.ServerURL)
	if err != nil {
		log.Fatalf("owlcat: reasoner: %v", err)
	}
	defer r.ReleaseKB(ctx)

	sat, err := r.IsKBSatisfiable(ctx)
	if err != nil {
		log.Fatalf("owlcat: is-kb-satisfiable: %v", err)
	}
	fmt.Printf("kb satisfiable: %v\n", sat)

	classes, err := r.GetAllClasses(ctx)
	if err != nil {
		log.Fatalf("owlcat: get-all-classes: %v", err)
	}
	for _, c := range classes {
		fmt.Println(owl2.NewClassExpr(c).String())
	}
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ServerURL == "" {
		return cfg, fmt.Errorf("config: server_url is required")
	}
	return cfg, nil
}
