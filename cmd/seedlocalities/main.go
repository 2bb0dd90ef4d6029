// Seeds the states and municipalities tables from the IBGE localities API.
// Idempotent; safe to re-run after a partial failure since the whole run is
// transactional.
//
// Usage:
//
//	go run ./cmd/seedlocalities [-base-url URL] [-timeout 5m]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"sigi_backend/internals/configs"
	"sigi_backend/internals/features/directory/seeder"
)

func main() {
	baseURL := flag.String("base-url", seeder.DefaultIBGEBaseURL, "IBGE localities API base URL")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	configs.LoadEnv()
	db := configs.InitSeederDB()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := seeder.NewIBGEClient(*baseURL)

	cyan := color.New(color.FgCyan)
	start := time.Now()

	summary, err := seeder.SeedLocalities(ctx, db, client, seeder.Progress{
		OnState: func(uf, name string) {
			cyan.Printf("» %s (%s)\n", name, uf)
		},
	})
	if err != nil {
		color.Red("seed aborted: %v", err)
		log.Fatal("no changes were committed")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"UF", "State", "New", "Municipalities (new/total)"})
	totalNew := 0
	for _, st := range summary.States {
		created := "no"
		if st.StateCreated {
			created = "yes"
		}
		table.Append([]string{
			st.UF,
			st.Name,
			created,
			strconv.Itoa(st.MunicipalitiesCreated) + "/" + strconv.Itoa(st.MunicipalitiesTotal),
		})
		totalNew += st.MunicipalitiesCreated
	}
	table.Render()

	color.Green("done: %d states, %d new municipalities in %s",
		len(summary.States), totalNew, time.Since(start).Round(time.Second))
}
