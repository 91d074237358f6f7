package users_module

import (
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"

	"github.com/guessquest/guessquest/internal/auth"
	"github.com/guessquest/guessquest/internal/stores/users"
	"github.com/guessquest/guessquest/pkg/utils"
)

var (
	store  users.Store
	tokens *auth.TokenService
)

/** ---- INIT ---- */

// Init wires the user module from configuration: the MySQL user store and
// the token service protected routes verify against
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

	userStore, err := users.NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		log.Fatalf("[USERS]: Failed to initialize user store: %v", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Get("JWT_SECRET"), cfg.GetDuration("JWT_LIFETIME", auth.DefaultTokenLifetime))
	if err != nil {
		log.Fatalf("[USERS]: Failed to initialize token service: %v", err)
	}

	InitWithDeps(userStore, tokenService)
}

// InitWithDeps installs an already-built store and token service. Tests use
// this to run the module against an in-memory store.
func InitWithDeps(userStore users.Store, tokenService *auth.TokenService) {
	store = userStore
	tokens = tokenService
}

// GetStore returns the user store the module was initialized with
func GetStore() users.Store {
	return store
}

// GetTokenService returns the token service the module was initialized with
func GetTokenService() *auth.TokenService {
	return tokens
}
