package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"account-recommendation/internal/config"
	"account-recommendation/internal/logger"
)

// ErrCheckFailed возвращается командами, которые должны завершиться с ненулевым кодом без вывода usage
var ErrCheckFailed = errors.New("check failed")

// app - состояние, общее для всех подкоманд
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	logLevel string
}

// NewRootCommand создает корневую команду со всеми подкомандами
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "acctrec",
		Short: "Account recommendation contract tools",
		Long: "Заглушка сервиса рекомендаций стандартных счетов, smoke-клиент, " +
			"проверка учетных данных провайдера и миграция analysis_result.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	rootCmd.AddCommand(
		newServeCommand(a),
		newSmokeCommand(a),
		newCheckProviderCommand(a),
		newMigrateCommand(a),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.cfg = config.Load()
	if cmd.Flags().Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}

	log, err := logger.New(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	a.logger = log.With(zap.String("command", cmd.Name()))
	return nil
}
