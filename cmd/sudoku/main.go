package main

import "github.com/rs/zerolog/log"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("run command")
	}
}
