package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hireloop/resume-ranker/internal/candidate"
	"github.com/hireloop/resume-ranker/internal/export"
	"github.com/hireloop/resume-ranker/internal/logger"
	"github.com/hireloop/resume-ranker/internal/screener"
)

const (
	PromptExit         = "Exit"
	PromptBack         = "back"
	PromptRankedReport = "Show ranked report"
	PromptTriage       = "Triage a candidate"
	PromptDumpToFile   = "Dump candidates to file"
	PromptExcelReport  = "Write Excel report"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptRankedReport, PromptTriage, PromptDumpToFile, PromptExcelReport, PromptExit},
}

var screenCmd = &cobra.Command{
	Use:   "screen [resume files]",
	Short: "Screen resume text files, score them and triage the results",
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("requirements", "r", "", "job requirements text file. Without it resumes are scored on their own merits.")
	screenCmd.Flags().BoolP("no-prompt", "y", false, "print the ranked report and exit without the interactive loop")

	viper.BindPFlag("requirements", screenCmd.Flags().Lookup("requirements"))
}

// screen is the main command for the cli.
func screen(cmd *cobra.Command, args []string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-ranker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	lists, err := resolveLists(config)
	if err != nil {
		logger.Fatal("resolving word lists", zap.Error(err))
	}

	paths := args
	if len(paths) == 0 {
		paths = config.Resumes
	}
	if len(paths) == 0 {
		logger.Fatal("no resume files given",
			zap.String("hint", "pass resume text files as arguments or set the 'resumes' key in the configuration file"),
		)
	}

	resumes, err := readFiles(paths)
	if err != nil {
		logger.Fatal("reading resume files", zap.Error(err))
	}

	logger.Info("loaded resumes", zap.Int("count", len(resumes)))

	s := screener.New(lists, logger)

	candidates, err := runScreening(s, config, resumes, logger)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	printRankedReport(logger, candidates)

	if cmd.Flag("no-prompt").Value.String() == "true" {
		writeConfiguredOutputs(config, candidates, logger)
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, candidates); err != nil {
			if errors.Is(err, errExit) {
				writeConfiguredOutputs(config, candidates, logger)
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// runScreening picks the screening path: against requirements when a
// requirements file is configured, resume-only heuristics otherwise.
func runScreening(s *screener.Screener, config *Config, resumes []string, logger *zap.Logger) (*candidate.Candidates, error) {
	requirementsPath := strings.TrimSpace(viper.GetString("requirements"))
	if requirementsPath == "" && config != nil {
		requirementsPath = strings.TrimSpace(config.Requirements)
	}

	if requirementsPath == "" {
		logger.Info("no requirements file, scoring resumes on their own merits")
		return s.ScreenResumes(resumes), nil
	}

	requirementText, err := os.ReadFile(requirementsPath)
	if err != nil {
		return nil, fmt.Errorf("reading requirements file: %w", err)
	}

	logger.Info("screening against requirements", zap.String("file", requirementsPath))
	return s.ScreenAgainstRequirements(string(requirementText), resumes), nil
}

func handleAction(action string, logger *zap.Logger, config *Config, candidates *candidate.Candidates) error {
	switch action {
	case PromptRankedReport:
		printRankedReport(logger, candidates)
		return nil
	case PromptTriage:
		return triage(logger, candidates)
	case PromptDumpToFile:
		filename, err := candidates.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExcelReport:
		path := "resume-ranker-report.xlsx"
		if config != nil && config.Output != nil && config.Output.ExcelFile != "" {
			path = config.Output.ExcelFile
		}
		if err := export.WriteExcel(path, candidates); err != nil {
			return fmt.Errorf("writing excel report: %w", err)
		}
		logger.Info("wrote excel report", zap.String("filename", path))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// triage lets a human walk the list and reassign recommendations.
func triage(logger *zap.Logger, candidates *candidate.Candidates) error {
	for {
		items := make([]string, 0, candidates.Len()+1)
		for _, c := range candidates.SortedByScore() {
			items = append(items, fmt.Sprintf("%s %s / %.1f / %s", c.ID, c.Name, c.Score, c.Recommendation))
		}

		candidatePrompt := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := candidatePrompt.Run()
		if err != nil {
			return err
		}
		if selected == PromptBack {
			return nil
		}

		id := strings.Split(selected, " ")[0]
		if candidates.FindByID(id) == nil {
			return fmt.Errorf("there is no such candidate id %s", id)
		}

		recommendationPrompt := promptui.Select{
			Label: "New recommendation",
			Items: []string{
				string(candidate.Approve),
				string(candidate.Hold),
				string(candidate.Reject),
				PromptBack,
			},
		}

		_, recommendation, err := recommendationPrompt.Run()
		if err != nil {
			return err
		}
		if recommendation == PromptBack {
			continue
		}

		candidates.SetRecommendation(id, candidate.Recommendation(recommendation))
		logger.Info("recommendation updated",
			zap.String("id", id),
			zap.String("recommendation", recommendation),
		)
	}
}

func printRankedReport(logger *zap.Logger, candidates *candidate.Candidates) {
	logger.Info("ranked candidates", zap.Int("count", candidates.Len()))

	for i, c := range candidates.SortedByScore() {
		logger.Info(fmt.Sprintf("#%d %s", i+1, c.Name),
			zap.String("id", c.ID),
			zap.Float64("score", c.Score),
			zap.String("recommendation", string(c.Recommendation)),
			zap.String("current_role", c.CurrentRole),
			zap.String("location", c.Location),
			zap.Strings("strengths", c.Strengths),
			zap.Strings("weaknesses", c.Weaknesses),
		)
	}
}

// writeConfiguredOutputs writes the JSON and Excel outputs named in the
// config, if any, so the final recommendations survive the session.
func writeConfiguredOutputs(config *Config, candidates *candidate.Candidates, logger *zap.Logger) {
	if config == nil || config.Output == nil {
		return
	}

	if config.Output.JSONFile != "" {
		if err := candidates.ToFile(config.Output.JSONFile); err != nil {
			logger.Error("writing json output", zap.Error(err))
		} else {
			logger.Info("wrote json output", zap.String("filename", config.Output.JSONFile))
		}
	}

	if config.Output.ExcelFile != "" {
		if err := export.WriteExcel(config.Output.ExcelFile, candidates); err != nil {
			logger.Error("writing excel report", zap.Error(err))
		} else {
			logger.Info("wrote excel report", zap.String("filename", config.Output.ExcelFile))
		}
	}
}

// readFiles reads every path into memory. Resume texts are small enough that
// slurping them all is fine.
func readFiles(paths []string) ([]string, error) {
	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		texts = append(texts, string(raw))
	}
	return texts, nil
}
