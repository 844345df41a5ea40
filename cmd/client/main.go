package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/papyra/papyra/pkg/client"
	"github.com/papyra/papyra/pkg/selection"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	indexFlag := flag.String("index", "", "index id")
	limitFlag := flag.Int("limit", 5, "result limit")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	client := client.New(*urlFlag, options...)

	sources, err := selectDocuments(ctx, client)

	if err != nil {
		panic(err)
	}

	query(ctx, client, *indexFlag, *limitFlag, sources)
}

func selectDocuments(ctx context.Context, c *client.Client) (selection.Selection, error) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

	documents, err := c.Documents.List(ctx)

	if err != nil {
		return selection.None(), err
	}

	for i, d := range documents {
		output.WriteString(fmt.Sprintf("%2d) ", i+1))
		output.WriteString(d.Source)

		if d.Title != "" {
			output.WriteString(" (" + d.Title + ")")
		}

		output.WriteString("\n")
	}

	output.WriteString(" >  ")
	line, err := reader.ReadString('\n')

	if err != nil {
		return selection.None(), err
	}

	var ids []string

	for _, field := range strings.Fields(line) {
		idx, err := strconv.Atoi(field)

		if err != nil || idx < 1 || idx > len(documents) {
			continue
		}

		ids = append(ids, documents[idx-1].Source)
	}

	output.WriteString("\n")

	return selection.Of(ids...), nil
}

func query(ctx context.Context, c *client.Client, index string, limit int, sources selection.Selection) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			panic(err)
		}

		input = strings.TrimSpace(input)

		if strings.HasPrefix(input, "/") {
			switch strings.ToLower(input) {
			case "/docs":
				val, err := selectDocuments(ctx, c)

				if err != nil {
					output.WriteString(err.Error() + "\n")
					continue LOOP
				}

				sources = val
				continue LOOP

			default:
				output.WriteString("Unknown command\n")
				continue LOOP
			}
		}

		// the gate runs before any request is issued
		if err := sources.Validate(); err != nil {
			output.WriteString(err.Error() + " (use /docs)\n")
			continue LOOP
		}

		results, err := c.Retrievals.New(ctx, client.RetrievalRequest{
			Index: index,

			Query: input,
			Limit: client.Ptr(limit),

			Selection: sources,
		})

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		if len(results) == 0 {
			output.WriteString("no matching chunks\n\n")
			continue LOOP
		}

		for _, r := range results {
			output.WriteString(fmt.Sprintf("[%s] %.3f\n", r.Source, r.Score))
			output.WriteString(r.Content)
			output.WriteString("\n\n")
		}
	}
}
