package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hireloop/resume-ranker/internal/lexicon"
)

const (
	app = "resume-ranker"
)

type Config struct {
	// Requirements is the path to the job requirements text file.
	Requirements string `mapstructure:"requirements"`
	// Resumes are resume text file paths, used when none are given as args.
	Resumes []string       `mapstructure:"resumes"`
	Output  *OutputConfig  `mapstructure:"output"`
	Lists   map[string]any `mapstructure:"lists"`
}

type OutputConfig struct {
	JSONFile  string `mapstructure:"json-file"`
	ExcelFile string `mapstructure:"excel-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-ranker is a cli for screening and ranking resume text files against job requirements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly given config file must be parseable.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The default config file is optional: built-in word lists and flags are
	// enough to run.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	return config, nil
}

// resolveLists merges configured word list overrides over the defaults.
func resolveLists(config *Config) (lexicon.Lists, error) {
	if config == nil || len(config.Lists) == 0 {
		return lexicon.Default(), nil
	}
	return lexicon.FromMap(config.Lists)
}
