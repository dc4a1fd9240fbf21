package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hireloop/resume-ranker/internal/logger"
	"github.com/hireloop/resume-ranker/internal/screener"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume file>",
	Short: "Parse a single resume file and print the extracted fields as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		parse(args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parse(path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	lists, err := resolveLists(config)
	if err != nil {
		logger.Fatal("resolving word lists", zap.Error(err))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume file", zap.Error(err))
	}

	s := screener.New(lists, logger)
	parsed := s.ParseResumeText(string(raw))

	out := struct {
		Parsed    any `json:"parsed"`
		Candidate any `json:"candidate"`
	}{
		Parsed:    parsed,
		Candidate: s.BuildCandidate(string(raw), ""),
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal("encoding parsed resume", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
