package database

import (
	"database/sql"
	"log/slog"

	"github.com/inkpress/metal/env"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const DriverName = "postgres"

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB
	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()
	if err != nil {
		slog.Error("there was an error closing the db", "error", err)

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("there was an error closing the db", "error", err)

		return false
	}

	return true
}

func (c *Connection) Ping() error {
	var driver *sql.DB
	var err error

	if driver, err = c.driver.DB(); err != nil {
		return err
	}

	return driver.Ping()
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
