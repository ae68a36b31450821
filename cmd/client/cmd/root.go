// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"postboard/cmd/client/cmd/posts"
	"postboard/internal/app/client"
	"postboard/internal/config"
	"postboard/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
	debug   bool
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "postboard",
	Short: "postboard - клиент для чтения и публикации постов",
	Long: `postboard работает с внешним JSON API постов.

Базовый адрес API берется из переменной API_BASE_URL, файла конфигурации
или флага --api. Без настроек используется jsonplaceholder.typicode.com.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Флаг командной строки важнее конфигурации
	if cmd.Flags().Changed("api") {
		if err := cfg.OverrideBaseURL(apiURL); err != nil {
			return fmt.Errorf("неверное значение --api: %w", err)
		}
	}

	if debug {
		log = logger.New(config.EnvLocal)
	} else {
		log = logger.NewWithLevel(config.EnvProd, "error")
	}

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".postboard"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем окружение и значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный вывод")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "базовый URL внешнего API")

	rootCmd.AddCommand(pingCmd)

	rootCmd.AddCommand(posts.PostsCmd)
	posts.PostsCmd.AddCommand(posts.ListCmd)
	posts.PostsCmd.AddCommand(posts.GetCmd)
	posts.PostsCmd.AddCommand(posts.CreateCmd)
	posts.PostsCmd.AddCommand(posts.UpdateCmd)
	posts.PostsCmd.AddCommand(posts.DeleteCmd)
}
