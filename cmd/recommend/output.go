// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinesim/internal/recommend"
)

// printer writes command results as text or JSON.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, json: asJSON}
}

// searchOutput is the JSON form of the search command.
type searchOutput struct {
	Query  string   `json:"query"`
	Titles []string `json:"titles"`
}

func (p *printer) encode(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) recommendations(res *recommend.Result) error {
	if p.json {
		return p.encode(res)
	}

	fmt.Fprintf(p.w, "Titles similar to %q:\n\n", res.ResolvedTitle)
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tGENRES\tSIMILARITY")
	for i, item := range res.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\n", i+1, item.Title, item.Genres, item.Similarity)
	}
	return tw.Flush()
}

func (p *printer) notFound(res *recommend.Result) error {
	if p.json {
		if res.Suggestions == nil {
			res.Suggestions = []string{}
		}
		return p.encode(res)
	}

	fmt.Fprintf(p.w, "Title '%s' not found as exact match.\n", res.Query)
	if len(res.Suggestions) == 0 {
		return nil
	}
	fmt.Fprintln(p.w, "Did you mean one of these?")
	for _, s := range res.Suggestions {
		fmt.Fprintln(p.w, s)
	}
	return nil
}

func (p *printer) titles(query string, titles []string) error {
	if p.json {
		return p.encode(searchOutput{Query: query, Titles: titles})
	}
	for _, t := range titles {
		fmt.Fprintln(p.w, t)
	}
	return nil
}
