package game_module

import (
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"

	"github.com/guessquest/guessquest/internal/stores/images"
	"github.com/guessquest/guessquest/pkg/utils"
)

var store images.Store

/** ---- INIT ---- */

// Init wires the image game module from configuration
func Init(cfg *utils.Config) {
	// Create MySQL config
	dbConfig := mysql.Config{
		User:      cfg.Get("MYSQL_USER"),
		Passwd:    cfg.Get("MYSQL_ROOT_PASSWORD"),
		Net:       "tcp",
		Addr:      fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.Get("MYSQL_PORT")),
		DBName:    cfg.Get("MYSQL_DATABASE"),
		ParseTime: true,
	}

	imageStore, err := images.NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		log.Fatalf("[GAME]: Failed to initialize image store: %v", err)
	}

	InitWithDeps(imageStore)
}

// InitWithDeps installs an already-built image store. Tests use this to run
// the module against an in-memory pool.
func InitWithDeps(imageStore images.Store) {
	store = imageStore
}

// GetStore returns the image store the module was initialized with
func GetStore() images.Store {
	return store
}
