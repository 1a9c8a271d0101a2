package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cloak"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	outputFlagName      = "output"
	configFlagName      = "config"
	librariesFlagName   = "libs"
	mappingFlagName     = "mapping"
	verboseFlagName     = "verbose"
	runParallelFlagName = "parallel"

	outputConfigKey      = "output"
	librariesConfigKey   = "libraries"
	mappingConfigKey     = "mapping"
	runParallelConfigKey = "run.parallel"

	globalInclusionsKey = "global.inclusions"
	globalExclusionsKey = "global.exclusions"
	transformersKey     = "transformers"

	defaultRunParallel = 1

	envPrefix = "CLOAK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cloak.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultTransformers is the transformer section written by `cloak init` and
// used when no configuration file is present.
var defaultTransformers = map[string]any{
	"marker": map[string]any{
		"enabled": true,
		"order":   0,
	},
	"fields": map[string]any{
		"enabled": true,
		"order":   1,
	},
	"methods": map[string]any{
		"enabled": true,
		"order":   2,
		"custom":  map[string]any{"method-exclusions": "main"},
	},
	"strings": map[string]any{
		"enabled": true,
		"order":   3,
		"custom":  map[string]any{"min-length": "4"},
	},
}

var globalLogger *slog.Logger

func init() {
	if err := godotenv.Load(filepath.Join(configFolderPath, dotEnvFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("failed to read config file", "error", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(outputConfigKey, "")
	v.SetDefault(mappingConfigKey, "")
	v.SetDefault(runParallelConfigKey, defaultRunParallel)
	v.SetDefault(librariesConfigKey, []string{})

	v.SetDefault(globalInclusionsKey, []string{"*"})
	v.SetDefault(globalExclusionsKey, []string{})
	v.SetDefault(transformersKey, defaultTransformers)

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// loadConfigFile reads an explicitly requested configuration file, replacing
// the one picked up from the working directory.
func loadConfigFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	slog.Debug("loaded config file", "path", viper.ConfigFileUsed())

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
