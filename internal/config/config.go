package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string
	SQLiteDBPath    string
	AMQPURL         string
	AMQPExchange    string
	LedgerTimezone  string
	LogLevel        logrus.Level
	OperatorWorkers int

	// Location is LedgerTimezone resolved.
	Location *time.Location
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env next to the binary is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be a local single-user setup
	env := Config{
		HTTPPort:        "9446",
		SQLiteDBPath:    "./data/money.db",
		AMQPExchange:    "money-tracker",
		LedgerTimezone:  "Local",
		LogLevel:        logrus.InfoLevel,
		OperatorWorkers: 1,
	}

	envHTTPPort := os.Getenv("HTTP_PORT")
	envSQLiteDBPath := os.Getenv("SQLITE_DB_PATH")
	envAMQPURL := os.Getenv("AMQP_URL")
	envAMQPExchange := os.Getenv("AMQP_EXCHANGE")
	envLedgerTimezone := os.Getenv("LEDGER_TIMEZONE")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envSQLiteDBPath) != 0 {
		env.SQLiteDBPath = envSQLiteDBPath
	}

	if len(envAMQPURL) != 0 {
		env.AMQPURL = envAMQPURL
	}

	if len(envAMQPExchange) != 0 {
		env.AMQPExchange = envAMQPExchange
	}

	if len(envLedgerTimezone) != 0 {
		env.LedgerTimezone = envLedgerTimezone
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		if workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS: must be at least 1, got %d", workers)
		}
		env.OperatorWorkers = workers
	}

	loc, err := time.LoadLocation(env.LedgerTimezone)
	if err != nil {
		return nil, fmt.Errorf("LEDGER_TIMEZONE: %w", err)
	}
	env.Location = loc

	return &env, nil
}

// AMQPEnabled reports whether change fan-out should be started.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}
