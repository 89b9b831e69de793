package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ninebox/sudoku-solver/server"
	"github.com/ninebox/sudoku-solver/service/puzzleservice"
	"github.com/ninebox/sudoku-solver/store"
)

func NewServeCommand() *cobra.Command {
	var (
		addr   string
		source string
		data   string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver as an HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := puzzleservice.NewClient(source, nil)
			if err != nil {
				return fmt.Errorf("create puzzle service client: %w", err)
			}
			records, err := store.NewFS(data)
			if err != nil {
				return fmt.Errorf("open record store: %w", err)
			}

			e := gin.Default()
			v1 := e.Group("/api").
				Group("/v1")
			server.NewHandler(client, records).Register(v1)

			log.Info().Str("addr", addr).Str("data", data).Msg("serving")
			return e.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&source, "source", defaultSource, "puzzle service base URL")
	cmd.Flags().StringVar(&data, "data", "records", "directory for stored solve records")
	return cmd
}
