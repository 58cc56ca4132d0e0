package store

import "github.com/ashd19/gitStalker/internal/config"

// storageConfig собирает config.Storage для тестов
func storageConfig(dsn string) config.Storage {
	return config.Storage{DB: config.DB{DSN: dsn}}
}
